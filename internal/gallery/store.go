package gallery

import (
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the single source of truth for all project data plus the
// navigation cursor (the project/folder currently being viewed). It is
// constructed once at startup and handed to every consumer; handlers run
// concurrently, so every operation takes the store lock and query results
// are detached copies that stay valid after the lock is released.
type Store struct {
	mu            sync.RWMutex
	projects      []*Project
	currentProj   *Project
	currentFolder *Folder
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// CreateProject creates a project with one empty folder per name, a fresh
// id and a random 6-digit PIN, and prepends it so the newest project is
// listed first. The caller validates input; empty folder names are kept
// as given.
func (s *Store) CreateProject(name, clientName, weddingDate string, folderNames []string) *Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	folders := make([]*Folder, 0, len(folderNames))
	for _, fname := range folderNames {
		folders = append(folders, &Folder{
			ID:     uuid.New().String(),
			Name:   fname,
			Photos: []*Photo{},
		})
	}

	project := &Project{
		ID:          uuid.New().String(),
		Name:        name,
		ClientName:  clientName,
		WeddingDate: weddingDate,
		PIN:         s.generatePIN(),
		CreatedAt:   time.Now(),
		Folders:     folders,
	}

	s.projects = append([]*Project{project}, s.projects...)
	return project.clone()
}

// PINs span 100000 through 999999.
const (
	pinFloor = 100000
	pinSpace = 900000
)

// generatePIN draws a 6-digit PIN that does not collide with an existing
// project, so no project can be shadowed at lookup time. Random draws are
// bounded; when they keep colliding the space is nearly full and a linear
// scan finds a free slot instead. Caller holds the lock.
func (s *Store) generatePIN() string {
	for attempt := 0; attempt < 100; attempt++ {
		candidate := randomPIN()
		if s.findByPIN(candidate) == nil {
			return candidate
		}
	}
	return s.scanPIN(rand.IntN(pinSpace))
}

// scanPIN walks the PIN space from the given offset, wrapping around, and
// returns the first PIN no project holds.
func (s *Store) scanPIN(start int) string {
	for i := 0; i < pinSpace; i++ {
		candidate := strconv.Itoa(pinFloor + (start+i)%pinSpace)
		if s.findByPIN(candidate) == nil {
			return candidate
		}
	}
	// Every PIN is taken; nothing unique is left to hand out.
	return randomPIN()
}

func randomPIN() string {
	const digits = "0123456789"
	pin := make([]byte, 6)
	pin[0] = digits[1+rand.IntN(9)]
	for i := 1; i < 6; i++ {
		pin[i] = digits[rand.IntN(10)]
	}
	return string(pin)
}

// AddFolder appends an empty folder to the named project. Unknown project
// ids are a silent no-op.
func (s *Store) AddFolder(projectID, folderName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project := s.findProject(projectID)
	if project == nil {
		return
	}
	project.Folders = append(project.Folders, &Folder{
		ID:     uuid.New().String(),
		Name:   folderName,
		Photos: []*Photo{},
	})
}

// AddPhoto appends a photo to a folder of the named project and returns a
// copy of it. Returns nil if the project or folder does not exist.
func (s *Store) AddPhoto(projectID, folderID, filename, url, thumbURL string) *Photo {
	s.mu.Lock()
	defer s.mu.Unlock()

	project := s.findProject(projectID)
	if project == nil {
		return nil
	}
	for _, folder := range project.Folders {
		if folder.ID == folderID {
			photo := &Photo{
				ID:       uuid.New().String(),
				Filename: filename,
				URL:      url,
				ThumbURL: thumbURL,
			}
			folder.Photos = append(folder.Photos, photo)
			return photo.clone()
		}
	}
	return nil
}

// ToggleResult is the state observed inside a toggle: the flipped photo,
// its folder and the project totals, all read under the same lock so the
// caller reports a consistent snapshot.
type ToggleResult struct {
	Photo         Photo
	FolderID      string
	TotalSelected int
	TotalFlagged  int
}

// TogglePhotoSelection inverts the selected flag on the matching photo of
// the active project and reports the resulting state. The second return is
// false when no project is active or the id is unknown. Photos are mutated
// in place, so the cursor observes the change directly.
func (s *Store) TogglePhotoSelection(photoID string) (ToggleResult, bool) {
	return s.togglePhoto(photoID, func(p *Photo) { p.Selected = !p.Selected })
}

// TogglePhotoFlag inverts the flagged flag on the matching photo of the
// active project.
func (s *Store) TogglePhotoFlag(photoID string) (ToggleResult, bool) {
	return s.togglePhoto(photoID, func(p *Photo) { p.Flagged = !p.Flagged })
}

func (s *Store) togglePhoto(photoID string, flip func(*Photo)) (ToggleResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentProj == nil {
		return ToggleResult{}, false
	}
	for _, folder := range s.currentProj.Folders {
		for _, photo := range folder.Photos {
			if photo.ID == photoID {
				flip(photo)
				return ToggleResult{
					Photo:         *photo,
					FolderID:      folder.ID,
					TotalSelected: countLocked(s.currentProj, func(p *Photo) bool { return p.Selected }),
					TotalFlagged:  countLocked(s.currentProj, func(p *Photo) bool { return p.Flagged }),
				}, true
			}
		}
	}
	return ToggleResult{}, false
}

// FindPhoto locates a photo and its folder within a project and returns
// copies. Both results are nil when the project or photo is unknown.
func (s *Store) FindPhoto(projectID, photoID string) (*Folder, *Photo) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project := s.findProject(projectID)
	if project == nil {
		return nil, nil
	}
	for _, folder := range project.Folders {
		for _, photo := range folder.Photos {
			if photo.ID == photoID {
				return folder.clone(), photo.clone()
			}
		}
	}
	return nil, nil
}

// SelectedPhotos returns, folder by folder in project order, the photos the
// client has selected. Folders with no selections are omitted. Unknown
// project ids yield an empty result.
func (s *Store) SelectedPhotos(projectID string) []FolderSelection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project := s.findProject(projectID)
	if project == nil {
		return []FolderSelection{}
	}

	result := []FolderSelection{}
	for _, folder := range project.Folders {
		var picked []*Photo
		for _, photo := range folder.Photos {
			if photo.Selected {
				picked = append(picked, photo.clone())
			}
		}
		if len(picked) > 0 {
			result = append(result, FolderSelection{Folder: folder.clone(), Photos: picked})
		}
	}
	return result
}

// TotalSelected counts selected photos across all folders of a project;
// 0 for unknown ids.
func (s *Store) TotalSelected(projectID string) int {
	return s.countPhotos(projectID, func(p *Photo) bool { return p.Selected })
}

// TotalFlagged counts flagged photos across all folders of a project;
// 0 for unknown ids.
func (s *Store) TotalFlagged(projectID string) int {
	return s.countPhotos(projectID, func(p *Photo) bool { return p.Flagged })
}

func (s *Store) countPhotos(projectID string, match func(*Photo) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project := s.findProject(projectID)
	if project == nil {
		return 0
	}
	return countLocked(project, match)
}

func countLocked(project *Project, match func(*Photo) bool) int {
	total := 0
	for _, folder := range project.Folders {
		for _, photo := range folder.Photos {
			if match(photo) {
				total++
			}
		}
	}
	return total
}

// AccessProjectByPin resolves a submitted PIN to a project by exact string
// match, first match in store order. Returns nil when no project matches.
func (s *Store) AccessProjectByPin(pin string) *Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if project := s.findByPIN(pin); project != nil {
		return project.clone()
	}
	return nil
}

// Project returns a copy of the project with the given id, or nil.
func (s *Store) Project(projectID string) *Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if project := s.findProject(projectID); project != nil {
		return project.clone()
	}
	return nil
}

// Projects returns a copy of the project list, newest first.
func (s *Store) Projects() []*Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.clone()
	}
	return out
}

// SetCurrentProject points the cursor at a project (nil clears it). The
// argument is matched by id, so copies handed out by query methods work.
// The folder cursor is reset to the project's first folder, if any.
func (s *Store) SetCurrentProject(project *Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentProj = nil
	s.currentFolder = nil
	if project == nil {
		return
	}
	s.currentProj = s.findProject(project.ID)
	if s.currentProj != nil && len(s.currentProj.Folders) > 0 {
		s.currentFolder = s.currentProj.Folders[0]
	}
}

// SetCurrentFolder points the folder cursor at a folder of the active
// project, matched by id. Folders outside the active project are ignored.
func (s *Store) SetCurrentFolder(folder *Folder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if folder == nil {
		s.currentFolder = nil
		return
	}
	if s.currentProj == nil {
		return
	}
	for _, f := range s.currentProj.Folders {
		if f.ID == folder.ID {
			s.currentFolder = f
			return
		}
	}
}

// CurrentProject returns a copy of the project the cursor points at, or nil.
func (s *Store) CurrentProject() *Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentProj == nil {
		return nil
	}
	return s.currentProj.clone()
}

// CurrentFolder returns a copy of the folder the cursor points at, or nil.
func (s *Store) CurrentFolder() *Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentFolder == nil {
		return nil
	}
	return s.currentFolder.clone()
}

// findProject and findByPIN are linear scans; the store holds a handful of
// projects. Caller holds the lock.
func (s *Store) findProject(projectID string) *Project {
	for _, p := range s.projects {
		if p.ID == projectID {
			return p
		}
	}
	return nil
}

func (s *Store) findByPIN(pin string) *Project {
	for _, p := range s.projects {
		if p.PIN == pin {
			return p
		}
	}
	return nil
}
