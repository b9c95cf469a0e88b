package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/raymeasure/pkg/geometry"
)

// Parse reads an STL file and returns a Model.
// It automatically detects whether the file is ASCII or binary format.
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file)
}

// ParseReader parses STL data from r, detecting ASCII or binary content
func ParseReader(r io.Reader) (*Model, error) {
	reader := bufio.NewReader(r)

	header, err := reader.Peek(5)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("failed to read file header: empty input")
	}

	// Some exporters write "solid" into binary headers, so ASCII must also
	// contain a facet keyword near the start.
	if string(header) == "solid" && looksLikeASCII(reader) {
		return parseASCII(reader)
	}

	return parseBinary(reader)
}

func looksLikeASCII(reader *bufio.Reader) bool {
	probe, _ := reader.Peek(512)
	return bytes.Contains(probe, []byte("facet")) || bytes.Contains(probe, []byte("endsolid"))
}

// parseASCII parses an ASCII STL stream; every solid block becomes a Solid
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			name := strings.Join(fields[1:], " ")
			if model.Name == "" {
				model.Name = name
			}
			model.BeginSolid(name)

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				v, err := parseVector(fields[2:5])
				if err != nil {
					return nil, fmt.Errorf("invalid facet normal: %w", err)
				}
				currentNormal = v
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("invalid vertex line: %q", scanner.Text())
			}
			v, err := parseVector(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("invalid vertex: %w", err)
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) == 3 {
				model.AddTriangle(geometry.NewTriangle(currentNormal, vertices[0], vertices[1], vertices[2]))
			}
			vertices = vertices[:0]
			currentNormal = geometry.Vector3{}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

func parseVector(fields []string) (geometry.Vector3, error) {
	var xyz [3]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return geometry.Vector3{}, err
		}
		xyz[i] = value
	}
	return geometry.NewVector3(xyz[0], xyz[1], xyz[2]), nil
}

// binaryFacet mirrors the 50-byte little-endian facet record
type binaryFacet struct {
	Normal     [3]float32
	V1, V2, V3 [3]float32
	Attribute  uint16
}

// parseBinary parses a binary STL stream as a single solid
func parseBinary(reader io.Reader) (*Model, error) {
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	model := NewModel(strings.TrimSpace(string(bytes.TrimRight(header, "\x00"))))
	model.BeginSolid(model.Name)

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	for i := uint32(0); i < triangleCount; i++ {
		var facet binaryFacet
		if err := binary.Read(reader, binary.LittleEndian, &facet); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		model.AddTriangle(geometry.NewTriangle(
			toVector(facet.Normal),
			toVector(facet.V1),
			toVector(facet.V2),
			toVector(facet.V3),
		))
	}

	return model, nil
}

func toVector(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}
