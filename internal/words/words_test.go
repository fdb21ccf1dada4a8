package words

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleList = `// sample
#easy
cat
DOG

#end
stray
#medium
  Garden
#hard
ignored-marker-word
#end
#end
#hard
Rhythm
#end
#extreme
// comment inside tier
fjord
#end
`

func TestParseTiers(t *testing.T) {
	b, err := Parse(strings.NewReader(sampleList))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cases := []struct {
		d    Difficulty
		want []string
	}{
		{Easy, []string{"cat", "dog"}},
		{Medium, []string{"garden", "ignored-marker-word"}},
		{Hard, []string{"rhythm"}},
		{Extreme, []string{"fjord"}},
	}
	for _, tc := range cases {
		t.Run(tc.d.String(), func(t *testing.T) {
			got := b.Words(tc.d)
			if strings.Join(got, ",") != strings.Join(tc.want, ",") {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestParseEveryWordInOneTier(t *testing.T) {
	b, err := Parse(strings.NewReader(sampleList))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	seen := map[string]Difficulty{}
	for _, d := range Difficulties {
		for _, w := range b.Words(d) {
			if prev, ok := seen[w]; ok {
				t.Errorf("word %q in both %s and %s", w, prev, d)
			}
			seen[w] = d
			if w == "" || w != strings.ToLower(strings.TrimSpace(w)) {
				t.Errorf("word %q is not trimmed lowercase", w)
			}
		}
	}
	if _, ok := seen["stray"]; ok {
		t.Error("word outside any tier should be discarded")
	}
}

func TestParseRejectsUnguessableWord(t *testing.T) {
	_, err := Parse(strings.NewReader("#easy\ncat\nk4t\n#end\n"))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("Expected LoadError, got %v", err)
	}
	if le.Line != 3 {
		t.Errorf("Expected line 3, got %d", le.Line)
	}
	if !errors.Is(err, ErrInvalidWord) {
		t.Errorf("Expected ErrInvalidWord in chain, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := Load(path)
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("Expected LoadError, got %v", err)
	}
	if le.Path != path {
		t.Errorf("Expected path %s, got %s", path, le.Path)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("#easy\ncat\ndog\n#end\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := Load(path, WithSource(&FixedSource{Values: []int{1}}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	w, err := b.RandomWord(Easy)
	if err != nil {
		t.Fatalf("RandomWord failed: %v", err)
	}
	if w != "dog" {
		t.Errorf("Expected dog, got %s", w)
	}
}

func TestLoadDefaultIsValid(t *testing.T) {
	b, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("embedded list should fill every tier: %v", err)
	}
}

func TestRandomWordEmptyTier(t *testing.T) {
	b, err := Parse(strings.NewReader("#easy\ncat\n#end\n"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = b.RandomWord(Hard)
	var et *EmptyTierError
	if !errors.As(err, &et) {
		t.Fatalf("Expected EmptyTierError, got %v", err)
	}
	if et.Difficulty != Hard {
		t.Errorf("Expected Hard, got %s", et.Difficulty)
	}
	if err := b.Validate(); !errors.As(err, &et) {
		t.Errorf("Validate should report the empty tier, got %v", err)
	}
}

func TestRandomWordCoversTier(t *testing.T) {
	b, err := Parse(strings.NewReader("#easy\ncat\ndog\nfox\nhen\n#end\n"), WithSource(NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	counts := map[string]int{}
	for i := 0; i < 2000; i++ {
		w, err := b.RandomWord(Easy)
		if err != nil {
			t.Fatal(err)
		}
		counts[w]++
	}
	for _, w := range b.Words(Easy) {
		if counts[w] == 0 {
			t.Errorf("word %q never chosen", w)
		}
	}
	if len(counts) != 4 {
		t.Errorf("Expected only tier words, got %v", counts)
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range Difficulties {
		got, ok := ParseDifficulty(strings.ToUpper(d.String()))
		if !ok || got != d {
			t.Errorf("ParseDifficulty(%s) = %v, %v", d, got, ok)
		}
	}
	if _, ok := ParseDifficulty("nightmare"); ok {
		t.Error("unknown difficulty should not parse")
	}
}
