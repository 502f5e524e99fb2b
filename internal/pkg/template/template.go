package template

import (
	"fmt"
	"regexp"
	"strings"
)

// Placeholder enumerates the names allowed inside {curly} markers of a
// notification template. Anything else fails the render instead of
// passing through unresolved.
type Placeholder string

const (
	PlaceholderReference   Placeholder = "reference"
	PlaceholderClientName  Placeholder = "client_name"
	PlaceholderClientFirst Placeholder = "client_first_name"
	PlaceholderOrderDate   Placeholder = "order_date"
	PlaceholderStatus      Placeholder = "status"
	PlaceholderAppName     Placeholder = "app_name"
)

var known = map[Placeholder]struct{}{
	PlaceholderReference:   {},
	PlaceholderClientName:  {},
	PlaceholderClientFirst: {},
	PlaceholderOrderDate:   {},
	PlaceholderStatus:      {},
	PlaceholderAppName:     {},
}

// Data maps placeholders to their substitution values. A known
// placeholder absent from the data renders as an empty string.
type Data map[Placeholder]string

// UnknownPlaceholderError reports a marker outside the closed set.
type UnknownPlaceholderError struct {
	Name string
}

func (e UnknownPlaceholderError) Error() string {
	return fmt.Sprintf("unknown template placeholder {%s}", e.Name)
}

var markerPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Render substitutes every {placeholder} marker in text with its value
// from data. Markers outside the Placeholder set make the render fail.
func Render(text string, data Data) (string, error) {
	for _, match := range markerPattern.FindAllStringSubmatch(text, -1) {
		name := Placeholder(match[1])
		if _, ok := known[name]; !ok {
			return "", UnknownPlaceholderError{Name: match[1]}
		}
	}
	for name := range data {
		if _, ok := known[name]; !ok {
			return "", UnknownPlaceholderError{Name: string(name)}
		}
	}

	rendered := markerPattern.ReplaceAllStringFunc(text, func(marker string) string {
		name := Placeholder(strings.Trim(marker, "{}"))
		return data[name]
	})
	return rendered, nil
}
