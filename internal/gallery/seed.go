package gallery

// SeedDemoData loads a sample project so the app is browsable before any
// real shoot is imported. Filenames follow the studio's card-dump naming.
func SeedDemoData(store *Store) *Project {
	project := store.CreateProject(
		"Ananya & Vikram Wedding",
		"Ananya Sharma",
		"2026-02-14",
		[]string{"Sangeeth", "Muhurtham", "Reception", "Haldi", "Mehendi"},
	)

	demoPhotos := map[string][]string{
		"Sangeeth":  {"DSC_0101.jpg", "DSC_0102.jpg", "DSC_0107.jpg", "DSC_0115.jpg", "DSC_0121.jpg"},
		"Muhurtham": {"DSC_0204.jpg", "DSC_0211.jpg", "DSC_0218.jpg", "DSC_0223.jpg"},
		"Reception": {"DSC_0301.jpg", "DSC_0305.jpg", "DSC_0312.jpg", "DSC_0319.jpg"},
		"Haldi":     {"DSC_0402.jpg", "DSC_0408.jpg", "DSC_0413.jpg"},
		"Mehendi":   {"DSC_0501.jpg", "DSC_0506.jpg", "DSC_0511.jpg"},
	}

	for _, folder := range project.Folders {
		for _, filename := range demoPhotos[folder.Name] {
			store.AddPhoto(project.ID, folder.ID, filename, "/media/demo/"+filename, "")
		}
	}
	return project
}
