package menu

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	menuerrors "github.com/youruser/menucard/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// document is the on-disk layout of an entries file. JSON files parse through the
// same path since YAML is a superset.
type document struct {
	Entries []Entry `yaml:"entries" validate:"dive"`
}

// LoadEntries reads an entries file from disk and returns the normalized entries
// in file order.
func LoadEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, menuerrors.NewParseError(path, 0, err)
	}
	return ParseEntries(path, data)
}

// ParseEntries decodes entries from YAML or JSON bytes. The name is only used in errors.
func ParseEntries(name string, data []byte) ([]Entry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, menuerrors.NewParseError(name, extractLine(err), err)
	}

	if err := validator.New().Struct(doc); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			return nil, menuerrors.NewValidationError(first.Namespace(), fmt.Sprintf("failed %q check", first.Tag()), err)
		}
		return nil, menuerrors.NewValidationError("entries", err.Error(), err)
	}

	return NormalizeAll(doc.Entries), nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
