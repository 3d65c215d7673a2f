package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang/glog"
	"go.uber.org/multierr"

	"friendlyenum/internal/adapter/header"
	"friendlyenum/internal/domain"
	"friendlyenum/internal/port"
)

// GenerateOptions tunes a generation run.
type GenerateOptions struct {
	HeaderExtension         string
	ImplementationExtension string
	SkipUnmatched           bool
	Strict                  bool
	KeepGoing               bool
	Check                   bool
}

// GenerateUseCase regenerates implementation files from their headers.
type GenerateUseCase struct {
	parser    port.HeaderParser
	generator port.ImplementationGenerator
	files     port.TextFiles
	state     port.StateStore
	out       io.Writer
	opts      GenerateOptions
	now       func() time.Time
}

// NewGenerateUseCase creates a new generate use case. Notices go to out.
func NewGenerateUseCase(
	parser port.HeaderParser,
	generator port.ImplementationGenerator,
	files port.TextFiles,
	state port.StateStore,
	out io.Writer,
	opts GenerateOptions,
) *GenerateUseCase {
	if opts.HeaderExtension == "" {
		opts.HeaderExtension = ".h"
	}
	if opts.ImplementationExtension == "" {
		opts.ImplementationExtension = ".cpp"
	}
	return &GenerateUseCase{
		parser:    parser,
		generator: generator,
		files:     files,
		state:     state,
		out:       out,
		opts:      opts,
		now:       time.Now,
	}
}

// FileResult is the outcome for one header.
type FileResult struct {
	Header         string
	Implementation string
	Outcome        domain.Outcome
}

// GenerateResult contains the results of a generation run.
type GenerateResult struct {
	Written   int
	Unchanged int
	Stale     int
	Ignored   int
	Failed    int
	Files     []FileResult
}

// ProgressFunc is called after each header is handled.
type ProgressFunc func(processed, total int, current string)

// Generate processes headers in order. Unless KeepGoing is set, the first
// failure stops the run and is returned.
func (u *GenerateUseCase) Generate(headers []string, progress ProgressFunc) (*GenerateResult, error) {
	result := &GenerateResult{}
	var errs error

	for i, path := range headers {
		if !strings.HasSuffix(path, u.opts.HeaderExtension) {
			fmt.Fprintf(u.out, "Ignoring: %s\n", path)
			if u.opts.SkipUnmatched {
				result.Ignored++
				u.report(progress, i+1, len(headers), path)
				continue
			}
		}

		fr, err := u.generateOne(path)
		result.Files = append(result.Files, fr)
		if err != nil {
			result.Failed++
			err = fmt.Errorf("%s: %w", path, err)
			if !u.opts.KeepGoing {
				return result, err
			}
			errs = multierr.Append(errs, err)
			u.report(progress, i+1, len(headers), path)
			continue
		}

		switch fr.Outcome {
		case domain.OutcomeWritten:
			result.Written++
		case domain.OutcomeUnchanged:
			result.Unchanged++
		case domain.OutcomeStale:
			result.Stale++
		}
		u.report(progress, i+1, len(headers), path)
	}

	return result, errs
}

func (u *GenerateUseCase) generateOne(path string) (FileResult, error) {
	fr := FileResult{
		Header:         path,
		Implementation: ImplementationPath(path, u.opts.ImplementationExtension),
		Outcome:        domain.OutcomeFailed,
	}

	lines, err := u.files.ReadLines(path)
	if err != nil {
		return fr, fmt.Errorf("failed to read header: %w", err)
	}

	model := u.parser.Parse(lines)
	model.Path = path
	glog.V(1).Infof("%s: enum %q, %d members, unknown %q", path, model.Enum.Name, len(model.Enum.Members), model.Enum.Unknown.Name)

	if u.opts.Strict {
		if err := header.Validate(model); err != nil {
			return fr, err
		}
	}

	content, err := u.generator.Generate(model)
	if err != nil {
		return fr, err
	}

	if u.opts.Check {
		current, err := u.files.ReadFile(fr.Implementation)
		if err != nil {
			return fr, err
		}
		if current == content {
			fr.Outcome = domain.OutcomeUnchanged
			fmt.Fprintf(u.out, "The file %s did not change\n", fr.Implementation)
		} else {
			fr.Outcome = domain.OutcomeStale
			fmt.Fprintf(u.out, "The file %s is out of date\n", fr.Implementation)
		}
	} else {
		changed, err := u.files.WriteIfChanged(fr.Implementation, content)
		if err != nil {
			return fr, err
		}
		if changed {
			fr.Outcome = domain.OutcomeWritten
			glog.V(1).Infof("wrote %s (%d bytes)", fr.Implementation, len(content))
		} else {
			fr.Outcome = domain.OutcomeUnchanged
			fmt.Fprintf(u.out, "The file %s did not change\n", fr.Implementation)
		}
	}

	err = u.state.PutRecord(domain.GenerationRecord{
		Implementation: fr.Implementation,
		Header:         path,
		EnumName:       model.Enum.Name,
		ContentHash:    contentHash(content),
		Outcome:        fr.Outcome,
		GeneratedAt:    u.now(),
	})
	if err != nil {
		return fr, fmt.Errorf("failed to record state: %w", err)
	}

	return fr, nil
}

func (u *GenerateUseCase) report(progress ProgressFunc, processed, total int, current string) {
	if progress != nil {
		progress(processed, total, current)
	}
}

// ImplementationPath returns the implementation file that sits next to a
// header: same directory and base name, implementation extension.
func ImplementationPath(headerPath, ext string) string {
	return strings.TrimSuffix(headerPath, filepath.Ext(headerPath)) + ext
}

func contentHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:8])
}
