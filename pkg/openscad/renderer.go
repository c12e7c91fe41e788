package openscad

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gocube/pkg/scene"
)

// Renderer runs the openscad binary
type Renderer struct {
	workDir string
	binary  string
}

// NewRenderer creates a renderer that runs in workDir
func NewRenderer(workDir string) *Renderer {
	return &Renderer{
		workDir: workDir,
		binary:  "openscad",
	}
}

// Available reports whether the openscad binary is on PATH
func (r *Renderer) Available() bool {
	_, err := exec.LookPath(r.binary)
	return err == nil
}

// RenderToSTL renders an OpenSCAD file to STL format
func (r *Renderer) RenderToSTL(scadFile, outputFile string) error {
	absScadFile := scadFile
	if !filepath.IsAbs(scadFile) {
		absScadFile = filepath.Join(r.workDir, scadFile)
	}

	if !r.Available() {
		return fmt.Errorf("openscad not found in PATH. Please install OpenSCAD from https://openscad.org/")
	}

	cmd := exec.Command(r.binary, "-o", outputFile, absScadFile)
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var errMsg strings.Builder
		errMsg.WriteString(fmt.Sprintf("failed to render %s: %v\n", scadFile, err))
		if stderr.Len() > 0 {
			errMsg.WriteString("stderr: ")
			errMsg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			errMsg.WriteString("stdout: ")
			errMsg.WriteString(stdout.String())
		}
		return fmt.Errorf("%s", errMsg.String())
	}

	return nil
}

// RenderObjects writes the objects to a temporary script and renders their
// union to outputFile. Overlapping cubes come out as one closed mesh.
func (r *Renderer) RenderObjects(name string, objects []scene.Object, outputFile string) error {
	tmp, err := os.CreateTemp("", "gocube_*.scad")
	if err != nil {
		return fmt.Errorf("failed to create temporary script: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, name, objects); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write temporary script: %w", err)
	}

	return r.RenderToSTL(tmp.Name(), outputFile)
}
