package taxonomy

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// releaseURL answers with the metadata of the latest
	// trove-classifiers release. JSON is a YAML subset, so the response
	// decodes with the same decoder as the snapshot file.
	releaseURL = "https://pypi.org/pypi/trove-classifiers/json"

	// listURL is the canonical classifier list inside the release's
	// source tree; releases are tagged with the version string.
	listURL = "https://raw.githubusercontent.com/pypa/trove-classifiers/%s/src/trove_classifiers/__init__.py"
)

// Fetch downloads a fresh dataset snapshot: the release version from the
// PyPI JSON API, then the classifier list from that release's source
// tree. Upstream keeps the list naturally sorted ("CUDA :: 2.0" before
// "CUDA :: 10.0"), so the order is taken as-is and never re-sorted here.
func Fetch(ctx context.Context, client *http.Client) (*Dataset, error) {
	if client == nil {
		client = http.DefaultClient
	}

	version, err := fetchVersion(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("fetching release version: %w", err)
	}

	classifiers, err := fetchClassifiers(ctx, client, version)
	if err != nil {
		return nil, fmt.Errorf("fetching classifier list for %s: %w", version, err)
	}

	return &Dataset{Version: version, Classifiers: classifiers}, nil
}

func fetchVersion(ctx context.Context, client *http.Client) (string, error) {
	raw, err := get(ctx, client, releaseURL)
	if err != nil {
		return "", err
	}

	var release struct {
		Info struct {
			Version string `yaml:"version"`
		} `yaml:"info"`
	}
	if err := yaml.Unmarshal(raw, &release); err != nil {
		return "", err
	}
	if release.Info.Version == "" {
		return "", fmt.Errorf("release metadata has no version")
	}

	return release.Info.Version, nil
}

func fetchClassifiers(ctx context.Context, client *http.Client, version string) ([]string, error) {
	raw, err := get(ctx, client, fmt.Sprintf(listURL, version))
	if err != nil {
		return nil, err
	}
	return parseClassifierList(raw)
}

// parseClassifierList pulls the quoted entries out of the upstream
// `classifiers = [` literal block. The upstream file keeps one entry per
// line; anything else inside the block is ignored.
func parseClassifierList(src []byte) ([]string, error) {
	var (
		out    []string
		inside bool
		closed bool
	)

	sc := bufio.NewScanner(bytes.NewReader(src))
	for sc.Scan() {
		line := sc.Text()

		if !inside {
			if strings.TrimRight(line, " \t") == "classifiers = [" {
				inside = true
			}
			continue
		}

		if strings.TrimSpace(line) == "]" {
			closed = true
			break
		}

		entry := strings.TrimSuffix(strings.TrimSpace(line), ",")
		if len(entry) >= 2 && entry[0] == '"' && entry[len(entry)-1] == '"' {
			out = append(out, entry[1:len(entry)-1])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if !inside {
		return nil, fmt.Errorf("classifier block not found")
	}
	if !closed {
		return nil, fmt.Errorf("classifier block not terminated")
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("classifier block is empty")
	}

	return out, nil
}

func get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
