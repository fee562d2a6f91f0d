package gallery

import "time"

// Photo is a single image offered for client selection.
type Photo struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
	ThumbURL string `json:"thumb_url,omitempty"`
	Selected bool   `json:"selected"`
	Flagged  bool   `json:"flagged"`
}

// Folder is a named subdivision of a project's photos, typically one
// ceremony (e.g. "Sangeeth", "Reception"). Photo order is insertion order.
type Folder struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Photos []*Photo `json:"photos"`
}

// Project is one wedding engagement: client metadata, an access PIN and
// an ordered set of folders.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ClientName  string    `json:"client_name"`
	WeddingDate string    `json:"wedding_date"`
	PIN         string    `json:"pin"`
	CreatedAt   time.Time `json:"created_at"`
	Folders     []*Folder `json:"folders"`
}

// FolderSelection groups the selected photos of one folder, in folder order.
type FolderSelection struct {
	Folder *Folder  `json:"folder"`
	Photos []*Photo `json:"photos"`
}

// The store hands out detached copies so callers can read and marshal them
// without holding the store lock while toggles mutate the originals.

func (p *Photo) clone() *Photo {
	c := *p
	return &c
}

func (f *Folder) clone() *Folder {
	c := *f
	c.Photos = make([]*Photo, len(f.Photos))
	for i, photo := range f.Photos {
		c.Photos[i] = photo.clone()
	}
	return &c
}

func (p *Project) clone() *Project {
	c := *p
	c.Folders = make([]*Folder, len(p.Folders))
	for i, folder := range p.Folders {
		c.Folders[i] = folder.clone()
	}
	return &c
}
