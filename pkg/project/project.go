// Package project reads and writes the binary .gocube project layout.
//
// All integers are little-endian uint32 and all strings are length
// prefixed. A file holds the magic header, the format version, the project
// name, the cubes (position, rotation and scale as three float32 each,
// then the material reference) and finally the list of imported files.
package project

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/philipparndt/gocube/pkg/geometry"
	"github.com/philipparndt/gocube/pkg/scene"
)

const (
	// Magic is the header every project file starts with
	Magic = "GOCUBE_PROJECT"
	// Version is the format version written by this package
	Version = "1.0"
	// Extension is the project file extension
	Extension = ".gocube"

	maxStringLength = 1 << 20
)

var (
	// ErrInvalidHeader means the data does not start with Magic
	ErrInvalidHeader = errors.New("invalid project header")
	// ErrTruncated means the data ended before the layout was complete
	ErrTruncated = errors.New("truncated project data")
)

// Data is the persisted content of a project
type Data struct {
	Name          string
	Version       string
	Cubes         []scene.Record
	ImportedFiles []string
}

// New creates an empty project
func New(name string) *Data {
	return &Data{Name: name, Version: Version}
}

// FromScene captures the cubes of s
func FromScene(name string, s *scene.Scene) *Data {
	d := New(name)
	d.Cubes = s.Records()
	return d
}

type writer struct {
	w   io.Writer
	err error
}

func (w *writer) uint32(v uint32) {
	if w.err != nil {
		return
	}
	w.err = binary.Write(w.w, binary.LittleEndian, v)
}

func (w *writer) string(s string) {
	w.uint32(uint32(len(s)))
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *writer) vector(v geometry.Vector3) {
	if w.err != nil {
		return
	}
	w.err = binary.Write(w.w, binary.LittleEndian, [3]float32{float32(v.X), float32(v.Y), float32(v.Z)})
}

// Write encodes the project. An empty Version is written as Version.
func (d *Data) Write(out io.Writer) error {
	version := d.Version
	if version == "" {
		version = Version
	}

	w := &writer{w: out}
	w.string(Magic)
	w.string(version)
	w.string(d.Name)

	w.uint32(uint32(len(d.Cubes)))
	for _, c := range d.Cubes {
		w.vector(c.Position)
		w.vector(c.Rotation)
		w.vector(c.Scale)
		w.string(c.Material)
	}

	w.uint32(uint32(len(d.ImportedFiles)))
	for _, f := range d.ImportedFiles {
		w.string(f)
	}

	if w.err != nil {
		return fmt.Errorf("failed to write project: %w", w.err)
	}
	return nil
}

type reader struct {
	r io.Reader
}

func (r reader) read(what string, v any) error {
	if err := binary.Read(r.r, binary.LittleEndian, v); err != nil {
		return wrapRead(what, err)
	}
	return nil
}

func (r reader) string(what string) (string, error) {
	var n uint32
	if err := r.read(what+" length", &n); err != nil {
		return "", err
	}
	if n > maxStringLength {
		return "", fmt.Errorf("%s length %d exceeds limit", what, n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return "", wrapRead(what, err)
	}
	return string(buf), nil
}

func (r reader) vector(what string) (geometry.Vector3, error) {
	var v [3]float32
	if err := r.read(what, &v); err != nil {
		return geometry.Vector3{}, err
	}
	for _, c := range v {
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
			return geometry.Vector3{}, fmt.Errorf("%s is not finite", what)
		}
	}
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2])), nil
}

func wrapRead(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("failed to read %s: %w", what, ErrTruncated)
	}
	return fmt.Errorf("failed to read %s: %w", what, err)
}

// Read decodes a project
func Read(in io.Reader) (*Data, error) {
	r := reader{r: in}

	magic, err := r.string("header")
	if err != nil || magic != Magic {
		return nil, ErrInvalidHeader
	}

	d := &Data{}
	if d.Version, err = r.string("version"); err != nil {
		return nil, err
	}
	if d.Name, err = r.string("name"); err != nil {
		return nil, err
	}

	var cubeCount uint32
	if err := r.read("cube count", &cubeCount); err != nil {
		return nil, err
	}
	for i := uint32(0); i < cubeCount; i++ {
		var c scene.Record
		if c.Position, err = r.vector(fmt.Sprintf("position of cube %d", i)); err != nil {
			return nil, err
		}
		if c.Rotation, err = r.vector(fmt.Sprintf("rotation of cube %d", i)); err != nil {
			return nil, err
		}
		if c.Scale, err = r.vector(fmt.Sprintf("scale of cube %d", i)); err != nil {
			return nil, err
		}
		if c.Material, err = r.string(fmt.Sprintf("material of cube %d", i)); err != nil {
			return nil, err
		}
		d.Cubes = append(d.Cubes, c)
	}

	var fileCount uint32
	if err := r.read("imported file count", &fileCount); err != nil {
		return nil, err
	}
	for i := uint32(0); i < fileCount; i++ {
		f, err := r.string(fmt.Sprintf("imported file %d", i))
		if err != nil {
			return nil, err
		}
		d.ImportedFiles = append(d.ImportedFiles, f)
	}

	return d, nil
}
