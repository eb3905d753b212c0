// Package farey approximates non-negative real numbers by fractions of two
// uint64 values using mediant bisection over the Stern-Brocot tree.
//
// The Farey sequence F_n is the sequence of completely reduced fractions
// between 0 and 1 with denominators <= n, arranged in increasing order. For
// any two adjacent fractions a/b and c/d, their mediant (a+c)/(b+d) lies
// strictly between them. Repeated mediant computation therefore performs a
// binary search over the rationals: the tree contains every positive rational
// exactly once, so narrowing a left/right bound pair by mediants converges on
// the best rational approximation reachable at double precision.
//
// The search loop reports every bisection step to an injectable Observer so
// callers can render, record, or discard the trace without the engine knowing
// about terminals.
package farey
