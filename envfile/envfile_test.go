package envfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	return string(data)
}

func TestFind(t *testing.T) {
	root := t.TempDir()

	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	writeFile(t, filepath.Join(root, ".env"), "a=b\n")

	t.Chdir(nested)

	path, err := Find()
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	if filepath.Base(path) != ".env" || filepath.Dir(path) != root {
		t.Errorf("Find() = %q, want file under %q", path, root)
	}
}

func TestFindCustomFilename(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".env.local"), "a=b\n")

	t.Chdir(root)

	path, err := Find(WithFilename(".env.local"))
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	if filepath.Base(path) != ".env.local" {
		t.Errorf("Find() = %q", path)
	}
}

func TestFindMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	// A name no ancestor directory will contain.
	path, err := Find(WithFilename(".env.find-missing-test"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Find = (%q, %v), want ErrNotFound", path, err)
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "a=b\nc=${a}\n")

	values, err := Values(path)
	if err != nil {
		t.Fatalf("Values: %v", err)
	}

	if got := values.Get("c"); got != "b" {
		t.Errorf(`Get("c") = %q, want "b"`, got)
	}
}

func TestValuesMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Values(filepath.Join(t.TempDir(), "absent.env"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Values error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "LOAD_TEST_A=file\nLOAD_TEST_B\n")

	t.Setenv("LOAD_TEST_A", "")
	os.Unsetenv("LOAD_TEST_A")

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := os.Getenv("LOAD_TEST_A"); got != "file" {
		t.Errorf("LOAD_TEST_A = %q, want %q", got, "file")
	}

	// Bare names carry no value and are never applied.
	if _, ok := os.LookupEnv("LOAD_TEST_B"); ok {
		t.Error("LOAD_TEST_B was set from a bare name")
	}
}

func TestLoadKeepsExistingByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "LOAD_TEST_KEEP=file\n")

	t.Setenv("LOAD_TEST_KEEP", "process")

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := os.Getenv("LOAD_TEST_KEEP"); got != "process" {
		t.Errorf("LOAD_TEST_KEEP = %q, want %q", got, "process")
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "LOAD_TEST_OVER=file\nLOAD_TEST_REF=${LOAD_TEST_OVER}\n")

	t.Setenv("LOAD_TEST_OVER", "process")
	t.Setenv("LOAD_TEST_REF", "stale")

	if err := Load(path, WithOverride(true)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := os.Getenv("LOAD_TEST_OVER"); got != "file" {
		t.Errorf("LOAD_TEST_OVER = %q, want %q", got, "file")
	}

	// Override also applies inside expansion: the reference reads the
	// document's value, not the stale process value.
	if got := os.Getenv("LOAD_TEST_REF"); got != "file" {
		t.Errorf("LOAD_TEST_REF = %q, want %q", got, "file")
	}
}

func TestGetKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "a=b\nbare\n")

	tests := []struct {
		name   string
		key    string
		want   string
		wantOK bool
	}{
		{name: "present", key: "a", want: "b", wantOK: true},
		{name: "absent", key: "missing"},
		{name: "bare name reads as unset", key: "bare"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok, err := GetKey(path, tt.key)
			if err != nil {
				t.Fatalf("GetKey: %v", err)
			}

			if ok != tt.wantOK || got != tt.want {
				t.Errorf("GetKey(%q) = (%q, %v), want (%q, %v)", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGetKeyMissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := GetKey(filepath.Join(t.TempDir(), "absent.env"), "a")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("GetKey error = %v, want fs.ErrNotExist", err)
	}
}

func TestSetKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		before  string
		missing bool // no file before the call
		key     string
		value   string
		opts    []Option
		want    string
	}{
		{
			name:    "creates file",
			missing: true,
			key:     "a",
			value:   "b",
			want:    "a='b'\n",
		},
		{
			name:   "replaces in place",
			before: "a=b\nc=d\ne=f\n",
			key:    "c",
			value:  "g",
			want:   "a=b\nc='g'\ne=f\n",
		},
		{
			name:   "appends after unterminated line",
			before: "a=b",
			key:    "c",
			value:  "d",
			want:   "a=b\nc='d'\n",
		},
		{
			name:   "preserves surrounding text",
			before: "# header\n\na=b\n\n# footer\n",
			key:    "a",
			value:  "z",
			want:   "# header\n\na='z'\n\n# footer\n",
		},
		{
			name:   "keeps trailing blank line",
			before: "a=b\n\n",
			key:    "a",
			value:  "c",
			want:   "a='c'\n\n",
		},
		{
			name:  "escapes quotes in value",
			key:   "a",
			value: "it's",
			want:  `a='it\'s'` + "\n",
		},
		{
			name:  "quote mode never",
			key:   "a",
			value: "b c",
			opts:  []Option{WithQuoteMode(QuoteNever)},
			want:  "a=b c\n",
		},
		{
			name:  "quote mode auto alphanumeric",
			key:   "a",
			value: "b1",
			opts:  []Option{WithQuoteMode(QuoteAuto)},
			want:  "a=b1\n",
		},
		{
			name:  "quote mode auto with spaces",
			key:   "a",
			value: "b c",
			opts:  []Option{WithQuoteMode(QuoteAuto)},
			want:  "a='b c'\n",
		},
		{
			name:  "export prefix",
			key:   "a",
			value: "b",
			opts:  []Option{WithExport(true)},
			want:  "export a='b'\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), ".env")
			if !tt.missing {
				writeFile(t, path, tt.before)
			}

			if err := SetKey(path, tt.key, tt.value, tt.opts...); err != nil {
				t.Fatalf("SetKey: %v", err)
			}

			if got := readFile(t, path); got != tt.want {
				t.Errorf("document = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetKeyRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")

	value := `tricky \ value with 'quotes' and ${REF}`
	if err := SetKey(path, "k", value); err != nil {
		t.Fatalf("SetKey: %v", err)
	}

	got, ok, err := GetKey(path, "k")
	if err != nil || !ok {
		t.Fatalf("GetKey = (%q, %v, %v)", got, ok, err)
	}

	if got != value {
		t.Errorf("round trip = %q, want %q", got, value)
	}
}

func TestUnsetKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "# keep\na=b\nc=d\n")

	removed, err := UnsetKey(path, "a")
	if err != nil {
		t.Fatalf("UnsetKey: %v", err)
	}

	if !removed {
		t.Fatal("UnsetKey reported nothing removed")
	}

	if got := readFile(t, path); got != "# keep\nc=d\n" {
		t.Errorf("document = %q", got)
	}
}

func TestUnsetKeyMissingKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "a=b\n")

	removed, err := UnsetKey(path, "zzz")
	if err != nil {
		t.Fatalf("UnsetKey: %v", err)
	}

	if removed {
		t.Error("UnsetKey reported a removal for an absent key")
	}

	if got := readFile(t, path); got != "a=b\n" {
		t.Errorf("document changed: %q", got)
	}
}

func TestUnsetKeyMissingFile(t *testing.T) {
	t.Parallel()

	_, err := UnsetKey(filepath.Join(t.TempDir(), "absent.env"), "a")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("UnsetKey error = %v, want fs.ErrNotExist", err)
	}
}
