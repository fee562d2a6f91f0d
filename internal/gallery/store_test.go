package gallery

import (
	"encoding/json"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectFoldersAndPin(t *testing.T) {
	store := NewStore()
	project := store.CreateProject("Priya Wedding", "Priya", "2026-01-10",
		[]string{"Sangeeth", "Muhurtham", "Reception"})

	require.Len(t, project.Folders, 3)
	assert.Equal(t, "Sangeeth", project.Folders[0].Name)
	assert.Equal(t, "Muhurtham", project.Folders[1].Name)
	assert.Equal(t, "Reception", project.Folders[2].Name)
	for _, folder := range project.Folders {
		assert.Empty(t, folder.Photos)
		assert.NotEmpty(t, folder.ID)
	}
	assert.Regexp(t, regexp.MustCompile(`^[0-9]{6}$`), project.PIN)
	assert.NotEmpty(t, project.ID)
}

func TestCreateProjectPrepends(t *testing.T) {
	store := NewStore()
	first := store.CreateProject("First", "A", "2026-01-01", []string{"F"})
	second := store.CreateProject("Second", "B", "2026-01-02", []string{"F"})

	projects := store.Projects()
	require.Len(t, projects, 2)
	assert.Equal(t, second.ID, projects[0].ID)
	assert.Equal(t, first.ID, projects[1].ID)
}

func TestPinRoundTrip(t *testing.T) {
	store := NewStore()
	for i := 0; i < 25; i++ {
		p := store.CreateProject("P", "C", "2026-01-01", []string{"F"})
		got := store.AccessProjectByPin(p.PIN)
		require.NotNil(t, got)
		assert.Equal(t, p.ID, got.ID)
	}
}

func TestPinsAreUnique(t *testing.T) {
	store := NewStore()
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		p := store.CreateProject("P", "C", "2026-01-01", []string{"F"})
		assert.False(t, seen[p.PIN], "duplicate pin %s", p.PIN)
		seen[p.PIN] = true
	}
}

func TestPinScanFindsFreeSlot(t *testing.T) {
	store := NewStore()
	store.projects = []*Project{{PIN: "100000"}, {PIN: "100001"}, {PIN: "100002"}}
	assert.Equal(t, "100003", store.scanPIN(0))

	// The scan wraps around the end of the PIN space.
	store.projects = []*Project{{PIN: "999999"}}
	assert.Equal(t, "100000", store.scanPIN(pinSpace-1))
}

func TestAccessByUnknownPin(t *testing.T) {
	store := NewStore()
	store.CreateProject("P", "C", "2026-01-01", []string{"F"})
	assert.Nil(t, store.AccessProjectByPin("000000"))
}

func TestToggleSelectionIsInvolution(t *testing.T) {
	store := NewStore()
	project := store.CreateProject("P", "C", "2026-01-01", []string{"F"})
	photo := store.AddPhoto(project.ID, project.Folders[0].ID, "a.jpg", "/a.jpg", "")
	require.NotNil(t, photo)
	store.SetCurrentProject(project)

	res, ok := store.TogglePhotoSelection(photo.ID)
	require.True(t, ok)
	assert.True(t, res.Photo.Selected)
	res, ok = store.TogglePhotoSelection(photo.ID)
	require.True(t, ok)
	assert.False(t, res.Photo.Selected)

	res, ok = store.TogglePhotoFlag(photo.ID)
	require.True(t, ok)
	assert.True(t, res.Photo.Flagged)
	res, ok = store.TogglePhotoFlag(photo.ID)
	require.True(t, ok)
	assert.False(t, res.Photo.Flagged)
}

func TestToggleReportsConsistentTotals(t *testing.T) {
	store := NewStore()
	project := store.CreateProject("P", "C", "2026-01-01", []string{"F"})
	folderID := project.Folders[0].ID
	p1 := store.AddPhoto(project.ID, folderID, "p1.jpg", "/p1.jpg", "")
	p2 := store.AddPhoto(project.ID, folderID, "p2.jpg", "/p2.jpg", "")
	store.SetCurrentProject(project)

	res, ok := store.TogglePhotoSelection(p1.ID)
	require.True(t, ok)
	assert.Equal(t, folderID, res.FolderID)
	assert.Equal(t, 1, res.TotalSelected)
	assert.Equal(t, 0, res.TotalFlagged)

	res, ok = store.TogglePhotoSelection(p2.ID)
	require.True(t, ok)
	assert.Equal(t, 2, res.TotalSelected)
}

func TestToggleWithoutActiveProjectIsNoop(t *testing.T) {
	store := NewStore()
	project := store.CreateProject("P", "C", "2026-01-01", []string{"F"})
	photo := store.AddPhoto(project.ID, project.Folders[0].ID, "a.jpg", "/a.jpg", "")

	_, ok := store.TogglePhotoSelection(photo.ID)
	assert.False(t, ok)

	_, got := store.FindPhoto(project.ID, photo.ID)
	require.NotNil(t, got)
	assert.False(t, got.Selected)
}

func TestToggleScopedToActiveProject(t *testing.T) {
	store := NewStore()
	other := store.CreateProject("Other", "C", "2026-01-01", []string{"F"})
	otherPhoto := store.AddPhoto(other.ID, other.Folders[0].ID, "o.jpg", "/o.jpg", "")
	active := store.CreateProject("Active", "C", "2026-01-01", []string{"F"})
	store.SetCurrentProject(active)

	_, ok := store.TogglePhotoSelection(otherPhoto.ID)
	assert.False(t, ok)

	_, got := store.FindPhoto(other.ID, otherPhoto.ID)
	require.NotNil(t, got)
	assert.False(t, got.Selected)
}

func TestCursorObservesMutation(t *testing.T) {
	store := NewStore()
	project := store.CreateProject("P", "C", "2026-01-01", []string{"F1", "F2"})
	photo := store.AddPhoto(project.ID, project.Folders[0].ID, "a.jpg", "/a.jpg", "")
	store.SetCurrentProject(project)

	store.TogglePhotoSelection(photo.ID)

	cur := store.CurrentProject()
	require.NotNil(t, cur)
	assert.True(t, cur.Folders[0].Photos[0].Selected)

	folder := store.CurrentFolder()
	require.NotNil(t, folder)
	assert.Equal(t, project.Folders[0].ID, folder.ID)
	assert.True(t, folder.Photos[0].Selected)
}

func TestQueriesReturnDetachedCopies(t *testing.T) {
	store := NewStore()
	project := store.CreateProject("P", "C", "2026-01-01", []string{"F"})
	photo := store.AddPhoto(project.ID, project.Folders[0].ID, "a.jpg", "/a.jpg", "")

	// Writing through a query result must not reach the stored photo.
	got := store.Project(project.ID)
	got.Folders[0].Photos[0].Selected = true
	assert.Equal(t, 0, store.TotalSelected(project.ID))

	photo.Filename = "scribbled.jpg"
	_, stored := store.FindPhoto(project.ID, photo.ID)
	require.NotNil(t, stored)
	assert.Equal(t, "a.jpg", stored.Filename)
}

func TestConcurrentTogglesAndReads(t *testing.T) {
	store := NewStore()
	project := store.CreateProject("P", "C", "2026-01-01", []string{"F"})
	photo := store.AddPhoto(project.ID, project.Folders[0].ID, "a.jpg", "/a.jpg", "")
	store.SetCurrentProject(project)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.TogglePhotoSelection(photo.ID)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := json.Marshal(store.Project(project.ID)); err != nil {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()

	// 400 toggles in total, so the photo ends up unselected.
	assert.Equal(t, 0, store.TotalSelected(project.ID))
}

func TestSelectedPhotosOmitsEmptyFolders(t *testing.T) {
	store := NewStore()
	project := store.CreateProject("P", "C", "2026-01-01", []string{"F1", "F2"})
	p1 := store.AddPhoto(project.ID, project.Folders[0].ID, "a.jpg", "/a.jpg", "")
	store.AddPhoto(project.ID, project.Folders[1].ID, "b.jpg", "/b.jpg", "")
	store.SetCurrentProject(project)
	store.TogglePhotoSelection(p1.ID)

	groups := store.SelectedPhotos(project.ID)
	require.Len(t, groups, 1)
	assert.Equal(t, project.Folders[0].ID, groups[0].Folder.ID)
	require.Len(t, groups[0].Photos, 1)
	assert.Equal(t, "a.jpg", groups[0].Photos[0].Filename)
	for _, g := range groups {
		assert.NotEmpty(t, g.Photos)
	}
}

func TestSelectionCounting(t *testing.T) {
	store := NewStore()
	project := store.CreateProject("P", "C", "2026-01-01", []string{"F"})
	folderID := project.Folders[0].ID
	p1 := store.AddPhoto(project.ID, folderID, "p1.jpg", "/p1.jpg", "")
	p2 := store.AddPhoto(project.ID, folderID, "p2.jpg", "/p2.jpg", "")
	store.SetCurrentProject(project)

	store.TogglePhotoSelection(p2.ID)
	assert.Equal(t, 1, store.TotalSelected(project.ID))

	store.TogglePhotoSelection(p1.ID)
	assert.Equal(t, 2, store.TotalSelected(project.ID))

	groups := store.SelectedPhotos(project.ID)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Photos, 2)
}

func TestTotalsForUnknownProject(t *testing.T) {
	store := NewStore()
	assert.Equal(t, 0, store.TotalSelected("nope"))
	assert.Equal(t, 0, store.TotalFlagged("nope"))
	assert.Empty(t, store.SelectedPhotos("nope"))
}

func TestAddFolderAppends(t *testing.T) {
	store := NewStore()
	project := store.CreateProject("P", "C", "2026-01-01", []string{"A", "B"})

	store.AddFolder(project.ID, "X")

	got := store.Project(project.ID)
	require.Len(t, got.Folders, 3)
	assert.Equal(t, "A", got.Folders[0].Name)
	assert.Equal(t, "B", got.Folders[1].Name)
	assert.Equal(t, "X", got.Folders[2].Name)
	assert.Empty(t, got.Folders[2].Photos)
}

func TestAddFolderUnknownProjectIsNoop(t *testing.T) {
	store := NewStore()
	project := store.CreateProject("P", "C", "2026-01-01", []string{"A"})

	store.AddFolder("missing", "X")

	assert.Len(t, store.Project(project.ID).Folders, 1)
	assert.Len(t, store.Projects(), 1)
}

func TestSetCurrentFolderOutsideActiveProjectIgnored(t *testing.T) {
	store := NewStore()
	a := store.CreateProject("A", "C", "2026-01-01", []string{"F"})
	b := store.CreateProject("B", "C", "2026-01-01", []string{"G"})
	store.SetCurrentProject(a)

	store.SetCurrentFolder(b.Folders[0])

	require.NotNil(t, store.CurrentFolder())
	assert.Equal(t, a.Folders[0].ID, store.CurrentFolder().ID)
}

func TestSeedDemoData(t *testing.T) {
	store := NewStore()
	project := SeedDemoData(store)

	require.Len(t, project.Folders, 5)
	assert.Equal(t, "Sangeeth", project.Folders[0].Name)
	for _, folder := range project.Folders {
		assert.NotEmpty(t, folder.Photos)
	}
	assert.Equal(t, 0, store.TotalSelected(project.ID))
}
