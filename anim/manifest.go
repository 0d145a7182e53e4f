package anim

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// clipManifest is the on-disk YAML schema for a clip.
type clipManifest struct {
	Length float32 `yaml:"length"`
	FPS    float32 `yaml:"fps"`
	Frames int     `yaml:"frames"`
	Bones  []struct {
		Name string `yaml:"name"`
		Keys []struct {
			Time        float32    `yaml:"time"`
			Translation [3]float32 `yaml:"translation"`
			Rotation    [4]float32 `yaml:"rotation"`
		} `yaml:"keys"`
	} `yaml:"bones"`
}

// DirSource loads clip manifests from YAML files under a root directory.
// The resource path is interpreted relative to Root.
type DirSource struct {
	Root string
}

// LoadClip reads and decodes the manifest at Root/path.
func (s DirSource) LoadClip(path string) (*ClipData, error) {
	raw, err := os.ReadFile(filepath.Join(s.Root, filepath.FromSlash(path)))
	if err != nil {
		return nil, fmt.Errorf("clip %q: %w", path, err)
	}
	return DecodeClipManifest(raw, path)
}

// DecodeClipManifest parses YAML clip manifest bytes. The path is only used
// in error messages. A missing frame count is derived from length and fps.
func DecodeClipManifest(raw []byte, path string) (*ClipData, error) {
	var m clipManifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("clip %q: %w", path, err)
	}
	if m.Length <= 0 {
		return nil, fmt.Errorf("clip %q: non-positive length %v", path, m.Length)
	}
	if m.FPS <= 0 {
		return nil, fmt.Errorf("clip %q: non-positive fps %v", path, m.FPS)
	}
	data := &ClipData{
		Length:     m.Length,
		FPS:        m.FPS,
		FrameCount: m.Frames,
	}
	if data.FrameCount == 0 {
		data.FrameCount = int(m.Length * m.FPS)
	}
	for _, bone := range m.Bones {
		track := BoneTrack{Bone: bone.Name, Keys: make([]Keyframe, 0, len(bone.Keys))}
		for _, k := range bone.Keys {
			track.Keys = append(track.Keys, Keyframe{
				Time:        k.Time,
				Translation: k.Translation,
				Rotation:    k.Rotation,
			})
		}
		data.Tracks = append(data.Tracks, track)
	}
	return data, nil
}
