package farey

// Epsilon is the convergence tolerance: 2^-52, the distance between 1.0 and
// the next representable float64. A candidate whose decimal value is closer
// to the target than this is indistinguishable at double precision.
const Epsilon = 0x1p-52

// DefaultMaxIterations bounds the search loop. Balanced walks converge within
// roughly the mantissa bit-width, but monotone runs advance the denominator
// linearly, one level per step: 0.01 needs a hundred steps, and a target a
// hair above 1/3 (e.g. 0.33333339) close to two million. The ceiling sits
// above those legitimate walks; targets that still exhaust it fail with a
// NonConvergenceError instead of looping effectively forever.
const DefaultMaxIterations = 1 << 22
