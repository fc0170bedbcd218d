package entities

const (
	Name    string = "name"
	Images  string = "images"
	Length  string = "length"
	Year    string = "year"
	Comment string = "comment"
)

func Text(name string, value string) EntityDecoratorFunc {
	return Attr(name, value)
}

func TextList(name string, values []string) EntityDecoratorFunc {
	return Attr(name, values)
}

func Number(name string, value float64) EntityDecoratorFunc {
	return Attr(name, value)
}

// Refs stores an ordered list of uris that reference other entities
func Refs(name string, uris ...string) EntityDecoratorFunc {
	refs := make([]string, len(uris))
	copy(refs, uris)
	return Attr(name, refs)
}

func DisplayName(value string) EntityDecoratorFunc {
	return Text(Name, value)
}

func Duration(milliseconds float64) EntityDecoratorFunc {
	return Number(Length, milliseconds)
}
