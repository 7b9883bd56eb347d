package parser

// InvalidInputError indicates the input was not usable text. Field-level
// absence (no email, no dates, no bullets) is never an error; it is
// represented as empty or zero values in the parsed record.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}
