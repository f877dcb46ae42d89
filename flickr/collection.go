package flickr

// Pagination is the paging metadata of a photo listing.
type Pagination struct {
	Page    int
	Pages   int
	PerPage int
	Total   int
}

// PhotoCollection is one page of photos in the order the service returned
// them. Pagination is nil when the response carried none.
type PhotoCollection struct {
	Photos     []*Photo
	Pagination *Pagination
}

var photoContainers = []string{"photos", "photoset"}

func photoContainer(resp map[string]any) map[string]any {
	for _, key := range photoContainers {
		if row := rowOf(resp[key]); row != nil {
			return row
		}
	}
	return nil
}

// NewPhotoCollection builds a collection from a decoded listing such as
// {"photos": {"page": ..., "photo": [...]}}. Each photo carries apiKey.
func NewPhotoCollection(resp map[string]any, apiKey string) *PhotoCollection {
	pc := &PhotoCollection{Photos: []*Photo{}}
	container := photoContainer(resp)
	if container == nil {
		return pc
	}

	for _, row := range Rows(container["photo"]) {
		pc.Photos = append(pc.Photos, NewPhoto(Text(row["id"]), apiKey, row))
	}

	// Older API versions put the paging fields beside the container.
	pc.Pagination = paginationFrom(container)
	if pc.Pagination == nil {
		pc.Pagination = paginationFrom(resp)
	}
	return pc
}

func paginationFrom(row map[string]any) *Pagination {
	_, hasPage := row["page"]
	_, hasPages := row["pages"]
	_, hasPerPage := row["perpage"]
	_, hasTotal := row["total"]
	if !hasPage && !hasPages && !hasPerPage && !hasTotal {
		return nil
	}
	return &Pagination{
		Page:    atoi(Text(row["page"])),
		Pages:   atoi(Text(row["pages"])),
		PerPage: atoi(Text(row["perpage"])),
		Total:   atoi(Text(row["total"])),
	}
}

func (pc *PhotoCollection) Len() int { return len(pc.Photos) }

func (pc *PhotoCollection) IDs() []string {
	ids := make([]string, len(pc.Photos))
	for i, p := range pc.Photos {
		ids[i] = p.id
	}
	return ids
}
