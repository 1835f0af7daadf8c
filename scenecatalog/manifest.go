// Package scenecatalog loads a manifest describing the scene catalog a run
// draws from — scene IDs, their .irbin paths, content hashes, dimensions,
// and capability requirements — mirroring original_source's
// assets/scene_registry.h SceneInfo/SceneRegistry contract.
package scenecatalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/vgcpu/vgbench/capability"
	"github.com/vgcpu/vgbench/ir"
)

// Info describes one catalog entry.
type Info struct {
	SceneID         string          `json:"scene_id"`
	IRPath          string          `json:"ir_path"`
	SceneHash       string          `json:"scene_hash,omitempty"`
	IRVersion       string          `json:"ir_version,omitempty"`
	DefaultWidth    int             `json:"default_width,omitempty"`
	DefaultHeight   int             `json:"default_height,omitempty"`
	Description     string          `json:"description,omitempty"`
	RequiredFeatures map[string]bool `json:"required_features,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
}

// manifestFile is the on-disk JSON shape: {"version": "...", "scenes": [...]}.
type manifestFile struct {
	Version string `json:"version"`
	Scenes  []Info `json:"scenes"`
}

// Catalog holds a loaded manifest and resolves scene IDs to decoded
// scenes, loading each .irbin file lazily on first request and caching it.
type Catalog struct {
	version   string
	assetsDir string
	byID      map[string]Info
	order     []string
	cache     map[string]*ir.Scene
}

// LoadManifest reads manifestPath (JSON) and resolves each entry's
// ir_path relative to assetsDir.
func LoadManifest(manifestPath, assetsDir string) (*Catalog, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("scenecatalog: read manifest %s: %w", manifestPath, err)
	}
	var mf manifestFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("scenecatalog: parse manifest %s: %w", manifestPath, err)
	}

	c := &Catalog{
		version:   mf.Version,
		assetsDir: assetsDir,
		byID:      make(map[string]Info, len(mf.Scenes)),
		cache:     make(map[string]*ir.Scene),
	}
	for _, s := range mf.Scenes {
		if s.SceneID == "" {
			return nil, fmt.Errorf("scenecatalog: manifest entry with empty scene_id")
		}
		if _, dup := c.byID[s.SceneID]; dup {
			return nil, fmt.Errorf("scenecatalog: duplicate scene_id %q", s.SceneID)
		}
		if s.DefaultWidth == 0 {
			s.DefaultWidth = 800
		}
		if s.DefaultHeight == 0 {
			s.DefaultHeight = 600
		}
		c.byID[s.SceneID] = s
		c.order = append(c.order, s.SceneID)
	}
	sort.Strings(c.order)
	return c, nil
}

// ManifestVersion returns the manifest's declared version string.
func (c *Catalog) ManifestVersion() string { return c.version }

// SceneIDs returns every scene ID, sorted lexicographically.
func (c *Catalog) SceneIDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Info returns the manifest entry for id.
func (c *Catalog) Info(id string) (Info, bool) {
	info, ok := c.byID[id]
	return info, ok
}

// ResolvePath returns the absolute filesystem path to id's .irbin file,
// mirroring SceneRegistry::GetScenePath.
func (c *Catalog) ResolvePath(id string) (string, error) {
	info, ok := c.byID[id]
	if !ok {
		return "", fmt.Errorf("scenecatalog: unknown scene_id %q", id)
	}
	path := filepath.Join(c.assetsDir, info.IRPath)
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("scenecatalog: resolve %s: %w", path, err)
	}
	return abs, nil
}

// Load decodes and caches the scene for id.
func (c *Catalog) Load(id string) (*ir.Scene, error) {
	if s, ok := c.cache[id]; ok {
		return s, nil
	}
	info, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("scenecatalog: unknown scene_id %q", id)
	}
	path := filepath.Join(c.assetsDir, info.IRPath)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenecatalog: read %s: %w", path, err)
	}
	s, err := ir.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("scenecatalog: decode %s: %w", path, err)
	}
	c.cache[id] = s
	return s, nil
}

// IsCompatible reports whether id's declared dimensions and
// required_features are satisfied by caps, mirroring
// SceneRegistry::IsCompatible.
func (c *Catalog) IsCompatible(id string, caps capability.Set) (bool, error) {
	info, ok := c.byID[id]
	if !ok {
		return false, fmt.Errorf("scenecatalog: unknown scene_id %q", id)
	}
	req := requiredFromInfo(info)
	_, ok = capability.Check(req, caps)
	return ok, nil
}

// CompatibleScenes returns every scene ID (sorted) whose declared
// requirements are satisfied by caps, mirroring
// SceneRegistry::GetCompatibleScenes.
func (c *Catalog) CompatibleScenes(caps capability.Set) []string {
	var out []string
	for _, id := range c.order {
		req := requiredFromInfo(c.byID[id])
		if _, ok := capability.Check(req, caps); ok {
			out = append(out, id)
		}
	}
	return out
}

// requiredFromInfo translates a manifest entry's declared dimensions and
// required_features map into a capability.Required. Unrecognized feature
// keys are ignored; a manifest with no required_features requires only
// baseline non-zero-fill rendering.
func requiredFromInfo(info Info) capability.Required {
	req := capability.Required{
		Width:  info.DefaultWidth,
		Height: info.DefaultHeight,
	}
	for feature, needed := range info.RequiredFeatures {
		if !needed {
			continue
		}
		switch feature {
		case "needs_nonzero":
			req.NeedsNonZero = true
		case "needs_evenodd":
			req.NeedsEvenOdd = true
		case "needs_cap_butt":
			req.NeedsCapButt = true
		case "needs_cap_round":
			req.NeedsCapRound = true
		case "needs_cap_square":
			req.NeedsCapSquare = true
		case "needs_join_miter":
			req.NeedsJoinMiter = true
		case "needs_join_round":
			req.NeedsJoinRound = true
		case "needs_join_bevel":
			req.NeedsJoinBevel = true
		case "needs_dashes":
			req.NeedsDashes = true
		case "needs_linear_gradient":
			req.NeedsLinear = true
		case "needs_radial_gradient":
			req.NeedsRadial = true
		case "needs_clipping":
			req.NeedsClipping = true
		}
	}
	return req
}
