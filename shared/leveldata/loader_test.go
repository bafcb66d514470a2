package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="24" tileheight="24" infinite="0" nextlayerid="3" nextobjectid="2">
 <properties>
  <property name="name" value="Tiled Test"/>
  <property name="scale" type="float" value="1.5"/>
  <property name="background" value="lab"/>
  <property name="velocity_x" type="float" value="75"/>
 </properties>
 <tileset firstgid="1" name="test" tilewidth="24" tileheight="24" tilecount="10" columns="10">
  <image source="tiles.png" width="240" height="24"/>
  <tile id="8">
   <properties>
    <property name="collision" type="int" value="2"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="collision" width="4" height="3">
  <data encoding="csv">
0,0,0,7,
0,0,9,0,
2,2,2,2
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="30" y="26" width="24" height="24"/>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/stage0.txt": {Data: []byte(smallLevel)},
		"levels/stage1.tmx": {Data: []byte(testTMX)},
		"levels/stage3.txt": {Data: []byte("#info\nname=broken\n")},
		"levels/notes.md":   {Data: []byte("not a level")},
	}
}

func TestLoadTMX(t *testing.T) {
	stage, err := LoadTMX(testFS(), "levels/stage1.tmx", testTable, 24)
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}

	if stage.Name != "Tiled Test" || stage.Background != "lab" || stage.Scale != 1.5 || stage.VelocityX != 75 {
		t.Errorf("info = %q %q %v %v", stage.Name, stage.Background, stage.Scale, stage.VelocityX)
	}
	if stage.SpawnX != 1 || stage.SpawnY != 1 {
		t.Errorf("spawn = (%d,%d), want (1,1)", stage.SpawnX, stage.SpawnY)
	}

	tests := []struct {
		x, y int
		want Tile
	}{
		{0, 0, TileNone},
		{3, 0, TileFinish}, // gid 7 is index 6
		{2, 1, TileDeath},  // index 8 maps to 0 but carries collision=2
		{0, 2, TileSolid},  // gid 2 is index 1
		{3, 2, TileSolid},
	}
	for _, tt := range tests {
		if got := stage.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestLoadTMXWrongTileSize(t *testing.T) {
	_, err := LoadTMX(testFS(), "levels/stage1.tmx", testTable, 32)
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("error = %v, want ErrMalformed", err)
	}
}

func TestFSSource(t *testing.T) {
	src := &FSSource{FS: testFS(), Dir: "levels", Table: testTable, TileSize: 24}

	stage, err := src.Load(0)
	if err != nil {
		t.Fatalf("Load(0): %v", err)
	}
	if stage.Name != "Test Run" {
		t.Errorf("Load(0) name = %q", stage.Name)
	}

	stage, err = src.Load(1)
	if err != nil {
		t.Fatalf("Load(1): %v", err)
	}
	if stage.Name != "Tiled Test" {
		t.Errorf("Load(1) name = %q", stage.Name)
	}

	if _, err := src.Load(2); !errors.Is(err, ErrNoSuchLevel) {
		t.Errorf("Load(2) error = %v, want ErrNoSuchLevel", err)
	}
	if _, err := src.Load(3); !errors.Is(err, ErrMalformed) {
		t.Errorf("Load(3) error = %v, want ErrMalformed", err)
	}
	if _, err := src.Load(-1); !errors.Is(err, ErrNoSuchLevel) {
		t.Errorf("Load(-1) error = %v, want ErrNoSuchLevel", err)
	}

	indices, err := src.Indices()
	if err != nil {
		t.Fatalf("Indices: %v", err)
	}
	want := []int{0, 1, 3}
	if len(indices) != len(want) {
		t.Fatalf("Indices = %v, want %v", indices, want)
	}
	for i := range want {
		if indices[i] != want[i] {
			t.Errorf("Indices = %v, want %v", indices, want)
			break
		}
	}
}

type parseOnlySource struct{ fs *FSSource }

func (p parseOnlySource) Load(index int) (*Stage, error) { return p.fs.Load(index) }

func TestHas(t *testing.T) {
	src := &FSSource{FS: testFS(), Dir: "levels", Table: testTable, TileSize: 24}

	tests := []struct {
		index int
		want  bool
	}{
		{-1, false},
		{0, true},
		{1, true},
		{2, false},
		{3, true}, // present, even though it does not parse
	}
	for _, tt := range tests {
		if got := Has(src, tt.index); got != tt.want {
			t.Errorf("Has(%d) = %v, want %v", tt.index, got, tt.want)
		}
		if got := Has(parseOnlySource{src}, tt.index); got != tt.want {
			t.Errorf("Has via Load(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}
