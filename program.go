package fractals

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Uniform names bound by a coloring program. Each is a vec2:
//
//	Resolution  (width, height)
//	Real        (MinRe, MaxRe)
//	Imag        (MinIm, MaxIm)
//	Factor      (StepRe, StepIm)
const (
	UniformResolution = "Resolution"
	UniformReal       = "Real"
	UniformImag       = "Imag"
	UniformFactor     = "Factor"
)

// viewportUniforms lists the uniforms in the order the renderer fills them.
var viewportUniforms = [...]string{UniformResolution, UniformReal, UniformImag, UniformFactor}

const fragmentEntry = "Fragment"

// Program is a compiled and link-checked coloring program.
type Program struct {
	Path   string
	Source []byte
	Shader *ebiten.Shader
	// Uniforms lists the viewport uniforms the program declares.
	Uniforms []string
}

// LoadProgram reads, compiles and link-checks the Kage program at path.
// Failures are returned as a *ProgramError.
func LoadProgram(path string) (*Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &ProgramError{Kind: ProgramIO, Path: path, Err: err}
	}

	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, &ProgramError{Kind: ProgramCompile, Path: path, Err: err}
	}

	uniforms, err := linkProgram(src)
	if err != nil {
		shader.Deallocate()
		return nil, &ProgramError{Kind: ProgramLink, Path: path, Err: err}
	}

	return &Program{Path: path, Source: src, Shader: shader, Uniforms: uniforms}, nil
}

// linkProgram resolves the program's entry point and its viewport uniforms.
// Kage uses Go syntax, so the source is inspected with go/parser. It returns
// the viewport uniforms that the program declares.
func linkProgram(src []byte) ([]string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "program.kage", src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	declared := make(map[string]string)
	var entry bool
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil && d.Name.Name == fragmentEntry {
				entry = true
			}
		case *ast.GenDecl:
			if d.Tok != token.VAR {
				continue
			}
			for _, s := range d.Specs {
				vs := s.(*ast.ValueSpec)
				typ := typeName(vs.Type)
				for _, name := range vs.Names {
					declared[name.Name] = typ
				}
			}
		}
	}

	if !entry {
		return nil, errors.New("entry point " + fragmentEntry + " not defined")
	}

	var uniforms []string
	for _, name := range viewportUniforms {
		typ, ok := declared[name]
		if !ok {
			continue
		}
		if typ != "vec2" {
			return nil, fmt.Errorf("uniform %s declared as %s, want vec2", name, typ)
		}
		uniforms = append(uniforms, name)
	}
	return uniforms, nil
}

// typeName renders a var's declared type.
func typeName(expr ast.Expr) string {
	if expr == nil {
		return "untyped"
	}
	return types.ExprString(expr)
}
