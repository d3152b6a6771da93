package codefmt

// Sprintf formats under pkger's package without building a [Formatter] by
// hand.
func Sprintf(pkger Pkger, format string, args ...any) string {
	return formatterOf(pkger).Sprintf(format, args...)
}

// Errorf builds a positioned error under pkger's package without building a
// [Formatter] by hand.
func Errorf(pkger Pkger, poser Poser, format string, args ...any) error {
	return formatterOf(pkger).Errorf(poser, format, args...)
}
