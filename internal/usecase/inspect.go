package usecase

import (
	"fmt"

	"friendlyenum/internal/adapter/header"
	"friendlyenum/internal/domain"
	"friendlyenum/internal/port"
)

// InspectUseCase parses a header without generating anything.
type InspectUseCase struct {
	parser port.HeaderParser
	files  port.TextFiles
	strict bool
}

func NewInspectUseCase(parser port.HeaderParser, files port.TextFiles, strict bool) *InspectUseCase {
	return &InspectUseCase{
		parser: parser,
		files:  files,
		strict: strict,
	}
}

// Inspect returns the model the generator would see for path.
func (u *InspectUseCase) Inspect(path string) (*domain.HeaderModel, error) {
	lines, err := u.files.ReadLines(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	model := u.parser.Parse(lines)
	model.Path = path

	if u.strict {
		if err := header.Validate(model); err != nil {
			return model, err
		}
	}
	return model, nil
}
