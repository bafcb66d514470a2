package leveldata

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// EmptyToken marks an empty cell in a #tiles row.
const EmptyToken = "--"

type section int

const (
	sectionNone section = iota
	sectionInfo
	sectionPlayer
	sectionSize
	sectionTiles
)

var sectionMarkers = map[string]section{
	"#info":   sectionInfo,
	"#player": sectionPlayer,
	"#size":   sectionSize,
	"#tiles":  sectionTiles,
}

type parser struct {
	table []int
	line  int

	stage  Stage
	seen   map[string]bool
	tiles  []Tile
	rows   int
	sized  bool
}

// Parse reads a stage in the line-oriented text format:
//
//	#info     name=, scale=, background=
//	#player   start_x=, start_y=, velocity_x=
//	#size     width=, height=
//	#tiles    height rows of width space-separated tile indices ("--" is empty)
//
// Tile indices are mapped through table to collision codes.
func Parse(r io.Reader, table []int) (*Stage, error) {
	p := &parser{table: table, seen: map[string]bool{}}

	scanner := bufio.NewScanner(r)
	current := sectionNone
	for scanner.Scan() {
		p.line++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if next, ok := sectionMarkers[line]; ok {
			if current == sectionTiles && p.rows < p.stage.Height {
				return nil, p.errorf("#tiles has %d rows, want %d", p.rows, p.stage.Height)
			}
			if next == sectionTiles && !p.sized {
				return nil, p.errorf("#tiles before #size")
			}
			current = next
			continue
		}

		var err error
		switch current {
		case sectionNone:
			err = p.errorf("content outside a section: %q", line)
		case sectionTiles:
			err = p.tileRow(line)
		default:
			err = p.keyValue(current, line)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}

	return p.finish()
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, p.line, fmt.Sprintf(format, args...))
}

func (p *parser) keyValue(s section, line string) error {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return p.errorf("expected key=value, got %q", line)
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	var err error
	switch s {
	case sectionInfo:
		switch key {
		case "name":
			p.stage.Name = value
		case "background":
			p.stage.Background = value
		case "scale":
			p.stage.Scale, err = strconv.ParseFloat(value, 64)
		default:
			return p.errorf("unknown #info key %q", key)
		}
	case sectionPlayer:
		switch key {
		case "start_x":
			p.stage.SpawnX, err = strconv.Atoi(value)
		case "start_y":
			p.stage.SpawnY, err = strconv.Atoi(value)
		case "velocity_x":
			p.stage.VelocityX, err = strconv.ParseFloat(value, 64)
		default:
			return p.errorf("unknown #player key %q", key)
		}
	case sectionSize:
		switch key {
		case "width":
			p.stage.Width, err = strconv.Atoi(value)
		case "height":
			p.stage.Height, err = strconv.Atoi(value)
		default:
			return p.errorf("unknown #size key %q", key)
		}
	}
	if err != nil {
		return p.errorf("bad value for %s: %v", key, err)
	}

	p.seen[key] = true
	if s == sectionSize && p.seen["width"] && p.seen["height"] {
		p.sized = true
	}
	return nil
}

func (p *parser) tileRow(line string) error {
	if p.rows >= p.stage.Height {
		return p.errorf("#tiles has more than %d rows", p.stage.Height)
	}
	if p.tiles == nil {
		if p.stage.Width <= 0 || p.stage.Height <= 0 {
			return p.errorf("size %dx%d must be positive", p.stage.Width, p.stage.Height)
		}
		p.tiles = make([]Tile, 0, p.stage.Width*p.stage.Height)
	}

	fields := strings.Fields(line)
	if len(fields) != p.stage.Width {
		return p.errorf("row %d has %d tiles, want %d", p.rows, len(fields), p.stage.Width)
	}
	for x, field := range fields {
		if field == EmptyToken {
			p.tiles = append(p.tiles, TileNone)
			continue
		}
		index, err := strconv.Atoi(field)
		if err != nil {
			return p.errorf("tile %q at column %d is not an index", field, x)
		}
		code, err := CollisionCode(p.table, index)
		if err != nil {
			return fmt.Errorf("line %d column %d: %w", p.line, x, err)
		}
		p.tiles = append(p.tiles, code)
	}
	p.rows++
	return nil
}

func (p *parser) finish() (*Stage, error) {
	for _, key := range []string{"name", "scale", "start_x", "start_y", "velocity_x", "width", "height"} {
		if !p.seen[key] {
			return nil, fmt.Errorf("%w: missing %s", ErrMalformed, key)
		}
	}
	if p.rows != p.stage.Height {
		return nil, fmt.Errorf("%w: #tiles has %d rows, want %d", ErrMalformed, p.rows, p.stage.Height)
	}

	stage, err := NewStage(p.stage.Width, p.stage.Height, p.tiles)
	if err != nil {
		return nil, err
	}
	stage.Name = p.stage.Name
	stage.Background = p.stage.Background
	stage.Scale = p.stage.Scale
	stage.SpawnX = p.stage.SpawnX
	stage.SpawnY = p.stage.SpawnY
	stage.VelocityX = p.stage.VelocityX

	if err := stage.validateSpawn(); err != nil {
		return nil, err
	}
	return stage, nil
}
