package patterns

import (
	"path"
	"strings"

	"cmg/internal/model"
)

// NameStats summarizes one population of names: how many fell into each
// convention bucket, the dominant convention, and up to 3 examples per
// bucket.
type NameStats struct {
	Distribution map[string]int      `json:"distribution"`
	Dominant     string              `json:"dominant"`
	Examples     map[string][]string `json:"examples"`
}

// NamingResult reports conventions separately for base filenames and for
// exported symbols.
type NamingResult struct {
	FileNames NameStats `json:"fileNames"`
	Exports   NameStats `json:"exports"`
}

func discoverNaming(instance *model.Instance, scope []string) *NamingResult {
	files := newNameStats()
	exports := newNameStats()

	for _, p := range scope {
		files.add(baseName(p))
		for _, export := range instance.Artifacts[p].Exports {
			exports.add(export)
		}
	}

	return &NamingResult{
		FileNames: files.finish(),
		Exports:   exports.finish(),
	}
}

// baseName strips the directory and the final extension: "utils/format.js"
// classifies as "format".
func baseName(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

type nameStats struct {
	distribution map[string]int
	examples     map[string][]string
}

func newNameStats() *nameStats {
	return &nameStats{
		distribution: map[string]int{},
		examples:     map[string][]string{},
	}
}

func (s *nameStats) add(name string) {
	convention := classifyName(name)
	s.distribution[convention]++
	if len(s.examples[convention]) < 3 {
		s.examples[convention] = append(s.examples[convention], name)
	}
}

// finish computes the dominant convention: the highest count, with the
// fixed classification order breaking ties.
func (s *nameStats) finish() NameStats {
	dominant := ""
	best := 0
	for _, convention := range conventionOrder {
		if count := s.distribution[convention]; count > best {
			best = count
			dominant = convention
		}
	}

	return NameStats{
		Distribution: s.distribution,
		Dominant:     dominant,
		Examples:     s.examples,
	}
}
