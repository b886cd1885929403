package forge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GenerateRequest bundles the inputs to the Generate operation (§4.6).
type GenerateRequest struct {
	TemplatePath string
	Context      Context
	OutputPath   string
	Strategy     Strategy
}

// GenerateResult is what Generate produced.
type GenerateResult struct {
	Written   bool
	Text      string
	Conflicts []Conflict
}

// Generate renders the template against the context and writes the result
// to OutputPath. If OutputPath already exists, the existing file is
// three-way merged with the rendering under Strategy before writing;
// otherwise the rendering is gofmt-formatted and written as is, and a
// rendering gofmt cannot parse is a ParseError (§4.6).
func Generate(req GenerateRequest) (*GenerateResult, error) {
	generatedText, err := RenderFile(req.TemplatePath, req.Context)
	if err != nil {
		return nil, err
	}

	existingBytes, err := os.ReadFile(req.OutputPath)
	if os.IsNotExist(err) {
		formatted, ferr := gofmtSource(generatedText)
		if ferr != nil {
			return nil, &ParseError{Path: req.TemplatePath, Err: ferr}
		}
		if werr := atomicWrite(req.OutputPath, formatted); werr != nil {
			return nil, werr
		}
		return &GenerateResult{Written: true, Text: formatted}, nil
	}
	if err != nil {
		return nil, &InputIOError{Path: req.OutputPath, Err: err}
	}

	existingItems, err := ParseNamed(req.OutputPath, string(existingBytes))
	if err != nil {
		return nil, err
	}
	generatedItems, err := ParseNamed(req.TemplatePath, generatedText)
	if err != nil {
		return nil, err
	}

	patch := Diff(existingItems, generatedItems)
	result := Merge(existingItems, generatedItems, patch, req.Strategy)

	if req.Strategy == FailOnConflict && len(result.Conflicts) > 0 {
		me := &MultiError{}
		for _, c := range result.Conflicts {
			me.Append(fmt.Errorf("%s", c.Message))
		}
		return nil, me
	}

	text, err := Print(result.Items)
	if err != nil {
		return nil, err
	}
	if err := atomicWrite(req.OutputPath, text); err != nil {
		return nil, err
	}
	return &GenerateResult{Written: true, Text: text, Conflicts: result.Conflicts}, nil
}

// atomicWrite writes content to path via a temp file in the same
// directory followed by rename, so a crash mid-write never leaves a
// truncated file in place (§9, "atomic write" disposition).
func atomicWrite(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".forge-*.tmp")
	if err != nil {
		return &OutputIOError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return &OutputIOError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &OutputIOError{Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &OutputIOError{Path: path, Err: err}
	}
	return nil
}

// DiffRequest bundles the inputs to the Diff operation (§4.6).
type DiffRequest struct {
	TemplatePath string
	Context      Context
	ExistingPath string
	Verbose      bool
}

// ShowDiff renders the template and reports how it differs from
// ExistingPath, without writing anything.
func ShowDiff(req DiffRequest) (string, error) {
	generatedText, err := RenderFile(req.TemplatePath, req.Context)
	if err != nil {
		return "", err
	}

	existingBytes, err := os.ReadFile(req.ExistingPath)
	if os.IsNotExist(err) {
		return generatedText, nil
	}
	if err != nil {
		return "", &InputIOError{Path: req.ExistingPath, Err: err}
	}

	existingItems, err := ParseNamed(req.ExistingPath, string(existingBytes))
	if err != nil {
		return "", err
	}
	generatedItems, err := ParseNamed(req.TemplatePath, generatedText)
	if err != nil {
		return "", err
	}

	patch := Diff(existingItems, generatedItems)
	if patch.IsEmpty() {
		return "no differences", nil
	}
	if req.Verbose {
		return formatPatchVerbose(patch), nil
	}
	return LineDiff(string(existingBytes), generatedText), nil
}

func formatPatchVerbose(patch *Patch) string {
	var buf strings.Builder
	for _, op := range patch.Ops {
		switch op.Kind {
		case OpInsert:
			fmt.Fprintf(&buf, "insert %s (%s)\n", op.Name, op.New.Kind)
		case OpDelete:
			fmt.Fprintf(&buf, "delete %s (%s)\n", op.Name, op.Old.Kind)
		case OpModify:
			fmt.Fprintf(&buf, "modify %s (%s)\n", op.Name, op.New.Kind)
		case OpKeep:
			fmt.Fprintf(&buf, "keep %s (%s)\n", op.Name, op.Old.Kind)
		}
	}
	return buf.String()
}

// CheckRequest bundles the inputs to the Check operation (§4.6).
type CheckRequest struct {
	TemplatePath string
	Context      Context
	ExistingPath string
}

// CheckConflicts runs the generate pipeline under FailOnConflict without
// writing, returning the conflict list.
func CheckConflicts(req CheckRequest) ([]Conflict, error) {
	generatedText, err := RenderFile(req.TemplatePath, req.Context)
	if err != nil {
		return nil, err
	}

	existingBytes, err := os.ReadFile(req.ExistingPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &InputIOError{Path: req.ExistingPath, Err: err}
	}

	existingItems, err := ParseNamed(req.ExistingPath, string(existingBytes))
	if err != nil {
		return nil, err
	}
	generatedItems, err := ParseNamed(req.TemplatePath, generatedText)
	if err != nil {
		return nil, err
	}

	patch := Diff(existingItems, generatedItems)
	result := Merge(existingItems, generatedItems, patch, FailOnConflict)
	return result.Conflicts, nil
}
