package ui

// ColorPrimary returns the active theme's primary accent escape code.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the active theme's secondary escape code.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorGreen returns the active theme's success escape code.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the active theme's warning escape code.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the active theme's error escape code.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorCyan returns the active theme's info escape code.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorBold returns the active theme's bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the active theme's underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the active theme's reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }
