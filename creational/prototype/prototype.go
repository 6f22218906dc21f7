// Package prototype demonstrates the Prototype pattern.
//
// ResumeRepository keeps fully initialised Resume prototypes and hands out
// clones, so callers can edit what they get without touching the originals.
// Prototypes can be seeded from YAML:
//
//	resumes:
//	  JohnDoe:
//	    candidate_name: John Doe
//	    skills: .NET, Java
//	    work_experience: 5 years
package prototype

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrResumeNotFound is returned by GetResume for unknown keys.
var ErrResumeNotFound = errors.New("prototype: resume not found")

// Resume is the prototype type.
type Resume struct {
	CandidateName  string `yaml:"candidate_name"`
	Skills         string `yaml:"skills"`
	WorkExperience string `yaml:"work_experience"`
}

// Clone returns an independent copy.
func (r *Resume) Clone() *Resume {
	cp := *r
	return &cp
}

// ResumeRepository stores prototypes by key.
type ResumeRepository struct {
	mu      sync.RWMutex
	resumes map[string]*Resume
}

// NewResumeRepository returns a repository seeded with the two sample resumes.
func NewResumeRepository() *ResumeRepository {
	r := &ResumeRepository{resumes: map[string]*Resume{}}
	r.Register("JohnDoe", Resume{CandidateName: "John Doe", Skills: ".NET, Java", WorkExperience: "5 years"})
	r.Register("JaneDoe", Resume{CandidateName: "Jane Doe", Skills: "Python, JavaScript", WorkExperience: "3 years"})
	return r
}

type seedFile struct {
	Resumes map[string]Resume `yaml:"resumes"`
}

// LoadResumeRepository builds a repository from a YAML document.
func LoadResumeRepository(r io.Reader) (*ResumeRepository, error) {
	var seed seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("prototype: decode seeds: %w", err)
	}

	repo := &ResumeRepository{resumes: make(map[string]*Resume, len(seed.Resumes))}
	for key, resume := range seed.Resumes {
		repo.Register(key, resume)
	}
	return repo, nil
}

// Register stores a copy of r under key, replacing any previous prototype.
func (repo *ResumeRepository) Register(key string, r Resume) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.resumes[key] = &r
}

// GetResume returns a clone of the prototype stored under key.
func (repo *ResumeRepository) GetResume(key string) (*Resume, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	r, ok := repo.resumes[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrResumeNotFound, strconv.Quote(key))
	}
	return r.Clone(), nil
}

// Keys returns the stored keys in sorted order.
func (repo *ResumeRepository) Keys() []string {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return slices.Sorted(maps.Keys(repo.resumes))
}

// Demo edits two clones and shows the stored prototypes are unchanged.
func Demo(w io.Writer, repo *ResumeRepository) error {
	if repo == nil {
		repo = NewResumeRepository()
	}

	john, err := repo.GetResume("JohnDoe")
	if err != nil {
		return err
	}
	jane, err := repo.GetResume("JaneDoe")
	if err != nil {
		return err
	}
	john.Skills = "C#, ASP.NET"
	jane.WorkExperience = "4 years"

	fresh, err := repo.GetResume("JohnDoe")
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, fresh.Skills); err != nil {
		return err
	}

	fresh, err = repo.GetResume("JaneDoe")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, fresh.WorkExperience)
	return err
}
