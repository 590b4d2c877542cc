package detect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5"
)

const manifestName = "package.json"

// manifest is the subset of package.json detection reads.
type manifest struct {
	Name                 string            `json:"name"`
	Version              string            `json:"version"`
	Dependencies         map[string]string `json:"dependencies"`
	DevDependencies      map[string]string `json:"devDependencies"`
	PeerDependencies     map[string]string `json:"peerDependencies"`
	OptionalDependencies map[string]string `json:"optionalDependencies"`
}

// Project reads a JavaScript project on disk.
//
// A package counts as present when the project manifest declares it in any
// dependency section, or when node_modules/<pkg>/package.json resolves from
// the project root or one of its ancestors.
type Project struct {
	// Root is the directory holding the nearest package.json, or the start
	// directory when none was found.
	Root string

	// Boundary is the enclosing git work tree, empty outside a repository.
	// The manifest search never climbs above it.
	Boundary string

	// Declared maps dependency names to their declared version ranges.
	Declared map[string]string
}

// Open locates the project that contains dir.
func Open(dir string) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}

	p := &Project{Root: abs, Boundary: worktreeRoot(abs), Declared: map[string]string{}}

	manifestDir, ok := p.findManifest(abs)
	if !ok {
		return p, nil
	}
	p.Root = manifestDir

	m, err := readManifest(filepath.Join(manifestDir, manifestName))
	if err != nil {
		return nil, err
	}
	for _, section := range []map[string]string{
		m.OptionalDependencies,
		m.PeerDependencies,
		m.DevDependencies,
		m.Dependencies,
	} {
		for name, rng := range section {
			p.Declared[name] = rng
		}
	}
	return p, nil
}

// worktreeRoot returns the git work tree containing dir, or "".
func worktreeRoot(dir string) string {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	wt, err := repo.Worktree()
	if err != nil {
		return ""
	}
	return wt.Filesystem.Root()
}

// findManifest walks upward from dir to the boundary looking for package.json.
func (p *Project) findManifest(dir string) (string, bool) {
	for {
		if fileExists(filepath.Join(dir, manifestName)) {
			return dir, true
		}
		if p.Boundary != "" && dir == p.Boundary {
			return "", false
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Has and Version treat a nil project as empty.
func (p *Project) Has(pkg string) bool {
	if p == nil {
		return false
	}
	if _, ok := p.Declared[pkg]; ok {
		return true
	}
	_, ok := p.installedManifest(pkg)
	return ok
}

// Version prefers the installed version; otherwise the lower bound of the
// declared range.
func (p *Project) Version(pkg string) (*semver.Version, bool) {
	if p == nil {
		return nil, false
	}
	if path, ok := p.installedManifest(pkg); ok {
		if m, err := readManifest(path); err == nil {
			if v, err := semver.NewVersion(m.Version); err == nil {
				return v, true
			}
		}
	}
	if rng, ok := p.Declared[pkg]; ok {
		return lowerBound(rng)
	}
	return nil, false
}

// installedManifest follows node module resolution: node_modules in the
// root and every ancestor.
func (p *Project) installedManifest(pkg string) (string, bool) {
	if pkg == "" || strings.Contains(pkg, "..") {
		return "", false
	}
	dir := p.Root
	for {
		candidate := filepath.Join(dir, "node_modules", filepath.FromSlash(pkg), manifestName)
		if fileExists(candidate) {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func readManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("detect: parse %s: %w", path, err)
	}
	return &m, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// lowerBound extracts the smallest version a declared npm range admits.
// Protocol references (workspace:, file:, git, URLs) and tags have none.
func lowerBound(rng string) (*semver.Version, bool) {
	rng = strings.TrimSpace(rng)
	for _, prefix := range []string{"workspace:", "file:", "link:", "git:", "git+", "github:", "http:", "https:", "npm:"} {
		if strings.HasPrefix(rng, prefix) {
			return nil, false
		}
	}
	// Alternatives: take the first branch.
	if i := strings.Index(rng, "||"); i >= 0 {
		rng = rng[:i]
	}
	fields := strings.Fields(rng)
	if len(fields) == 0 {
		return nil, false
	}
	first := strings.TrimLeft(fields[0], "^~>=<v")
	if first == "" || first == "*" || first == "latest" {
		return nil, false
	}
	first = strings.NewReplacer(".x", ".0", ".X", ".0", ".*", ".0").Replace(first)
	v, err := semver.NewVersion(first)
	if err != nil {
		return nil, false
	}
	return v, true
}
