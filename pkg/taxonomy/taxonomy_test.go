package taxonomy

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestFromFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name: "valid dataset",
			content: `version: "2024.1"
classifiers:
  - "Topic :: Utilities"
  - "Typing :: Typed"
`,
		},
		{
			name:    "missing version",
			content: "classifiers:\n  - \"Topic :: Utilities\"\n",
			wantErr: true,
		},
		{
			name:    "missing classifiers",
			content: "version: \"2024.1\"\n",
			wantErr: true,
		},
		{
			name:    "not yaml",
			content: "{{{",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "classifiers.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			src := FromFile(path)
			version, err := src.CurrentVersion()

			if tt.wantErr {
				if !errors.Is(err, ErrUnavailable) {
					t.Errorf("CurrentVersion error = %v, want ErrUnavailable", err)
				}
				if _, err := src.SortedClassifiers(); !errors.Is(err, ErrUnavailable) {
					t.Errorf("SortedClassifiers error = %v, want ErrUnavailable", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("CurrentVersion failed: %v", err)
			}
			if version != "2024.1" {
				t.Errorf("version = %q, want %q", version, "2024.1")
			}

			classifiers, err := src.SortedClassifiers()
			if err != nil {
				t.Fatalf("SortedClassifiers failed: %v", err)
			}
			want := []string{"Topic :: Utilities", "Typing :: Typed"}
			if !slices.Equal(classifiers, want) {
				t.Errorf("classifiers = %v, want %v", classifiers, want)
			}
		})
	}
}

func TestFromFileMissing(t *testing.T) {
	src := FromFile(filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := src.CurrentVersion(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("CurrentVersion error = %v, want ErrUnavailable", err)
	}
}

func TestFromFileLoadsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifiers.yaml")
	if err := os.WriteFile(path, []byte("version: \"1\"\nclassifiers: [\"A :: B\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := FromFile(path)
	if _, err := src.CurrentVersion(); err != nil {
		t.Fatal(err)
	}

	// A rewrite after the first query must not leak into this run.
	if err := os.WriteFile(path, []byte("version: \"2\"\nclassifiers: [\"C :: D\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	version, err := src.CurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != "1" {
		t.Errorf("version changed mid-run: %q", version)
	}
}

func TestParseClassifierList(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    []string
		wantErr string
	}{
		{
			name: "plain block",
			src: `# canonical list
classifiers = [
    "Topic :: Utilities",
    "Typing :: Typed",
]
sorted_classifiers = sorted(classifiers)
`,
			want: []string{"Topic :: Utilities", "Typing :: Typed"},
		},
		{
			name:    "block missing",
			src:     "deprecated_classifiers = {}\n",
			wantErr: "not found",
		},
		{
			name:    "block never closed",
			src:     "classifiers = [\n    \"Topic :: Utilities\",\n",
			wantErr: "not terminated",
		},
		{
			name:    "block empty",
			src:     "classifiers = [\n]\n",
			wantErr: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseClassifierList([]byte(tt.src))

			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("parseClassifierList error = %v, want substring %q", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("parseClassifierList failed: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("parseClassifierList = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/pypi/trove-classifiers/json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"info": {"version": "2024.1"}}`))
	})
	mux.HandleFunc("/pypa/trove-classifiers/2024.1/src/trove_classifiers/__init__.py", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("classifiers = [\n    \"Typing :: Typed\",\n    \"Topic :: Utilities\",\n]\n"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := srv.Client()
	client.Transport = rewriteHost(srv.URL)

	ds, err := Fetch(context.Background(), client)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if ds.Version != "2024.1" {
		t.Errorf("version = %q, want %q", ds.Version, "2024.1")
	}
	// Upstream order is authoritative and must survive untouched.
	want := []string{"Typing :: Typed", "Topic :: Utilities"}
	if !slices.Equal(ds.Classifiers, want) {
		t.Errorf("classifiers = %v, want %v", ds.Classifiers, want)
	}
}

// rewriteHost points every request at the test server, keeping the path.
func rewriteHost(base string) http.RoundTripper {
	return roundTripFunc(func(req *http.Request) (*http.Response, error) {
		redirected := base + req.URL.Path
		clone := req.Clone(req.Context())
		u, err := req.URL.Parse(redirected)
		if err != nil {
			return nil, err
		}
		clone.URL = u
		clone.Host = u.Host
		return http.DefaultTransport.RoundTrip(clone)
	})
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
