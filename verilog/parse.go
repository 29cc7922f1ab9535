package verilog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/katalvlaran/gosta/netlist"
)

var (
	reLineComment  = regexp.MustCompile(`//[^\n]*`)
	reBlockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	reBusRange     = regexp.MustCompile(`\[\s*\d+\s*:\s*\d+\s*\]`)
	reIdent        = regexp.MustCompile(`\w+`)
	reInstance     = regexp.MustCompile(`^(\w+)\s+(\w+)\s*\((.*)\)$`)
	rePortBinding  = regexp.MustCompile(`\.(\w+)\s*\(\s*([\w$]*)\s*\)`)
)

func stripComments(src string) string {
	src = reBlockComment.ReplaceAllString(src, "")
	src = reLineComment.ReplaceAllString(src, "")

	return src
}

// Parse reads a single-module structural netlist (already run through
// Preprocess) into a netlist.BuildInput, per spec.md §6: input/output
// declarations become primary ports, every other non-declaration
// statement is a cell instance with named port bindings.
func Parse(src string) (netlist.BuildInput, error) {
	src = stripComments(src)

	var in netlist.BuildInput
	sawModule := false

	for _, raw := range strings.Split(src, ";") {
		stmt := strings.TrimSpace(strings.Join(strings.Fields(raw), " "))
		if stmt == "" {
			continue
		}

		switch {
		case strings.HasPrefix(stmt, "module "), stmt == "module":
			sawModule = true
			continue
		case strings.HasPrefix(stmt, "endmodule"):
			continue
		case strings.HasPrefix(stmt, "wire "):
			continue
		case strings.HasPrefix(stmt, "input "):
			in.PrimaryInputs = append(in.PrimaryInputs, declIdentifiers(stmt, "input")...)
			continue
		case strings.HasPrefix(stmt, "output "):
			in.PrimaryOutputs = append(in.PrimaryOutputs, declIdentifiers(stmt, "output")...)
			continue
		}

		inst, err := parseInstance(stmt)
		if err != nil {
			return netlist.BuildInput{}, err
		}
		in.Instances = append(in.Instances, inst)
	}

	if !sawModule {
		return netlist.BuildInput{}, ErrNoModule
	}

	return in, nil
}

// declIdentifiers extracts the comma-separated identifier list from an
// "input"/"output" declaration, dropping any bus-width range.
func declIdentifiers(stmt, keyword string) []string {
	rest := strings.TrimPrefix(stmt, keyword)
	rest = reBusRange.ReplaceAllString(rest, "")

	return reIdent.FindAllString(rest, -1)
}

// parseInstance parses "CellName instName (.pin(net), .pin2(net2));"
// with the trailing semicolon already stripped by the caller's split.
func parseInstance(stmt string) (netlist.InstanceDecl, error) {
	m := reInstance.FindStringSubmatch(stmt)
	if m == nil {
		return netlist.InstanceDecl{}, fmt.Errorf("verilog: %q: %w", stmt, ErrMalformedInstance)
	}

	cellName, instName, body := m[1], m[2], m[3]

	bindings := rePortBinding.FindAllStringSubmatch(body, -1)
	if bindings == nil {
		return netlist.InstanceDecl{}, fmt.Errorf("verilog: instance %q: %w", instName, ErrMalformedInstance)
	}

	decl := netlist.InstanceDecl{Name: instName, CellName: cellName}
	for _, b := range bindings {
		decl.Ports = append(decl.Ports, netlist.PortBinding{Pin: b[1], Net: b[2]})
	}

	return decl, nil
}
