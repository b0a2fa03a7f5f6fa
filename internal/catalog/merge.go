// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package catalog

// Merge combines remote and local lists, deduplicated by ID.
//
// Order is remote items in remote order, then local-only items in local
// order. On duplicate IDs the remote copy is kept when preferRemote is true,
// otherwise the local copy takes the remote item's position. Duplicates
// within one list keep their first occurrence.
func Merge(remote, local []Item, preferRemote bool) []Item {
	localByID := make(map[string]int, len(local))
	for i := range local {
		if _, dup := localByID[local[i].ID]; !dup {
			localByID[local[i].ID] = i
		}
	}

	merged := make([]Item, 0, len(remote)+len(local))
	seen := make(map[string]struct{}, len(remote)+len(local))

	for i := range remote {
		id := remote[i].ID
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if li, ok := localByID[id]; ok && !preferRemote {
			merged = append(merged, local[li])
			continue
		}
		merged = append(merged, remote[i])
	}

	for i := range local {
		id := local[i].ID
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, local[i])
	}
	return merged
}

// PageLimits bounds page sizes.
type PageLimits struct {
	Default int
	Max     int
}

// Normalize clamps page and pageSize: page < 1 becomes 1, pageSize < 1
// becomes the default and pageSize is capped at the maximum.
func (l PageLimits) Normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = l.Default
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if l.Max > 0 && pageSize > l.Max {
		pageSize = l.Max
	}
	return page, pageSize
}

// Paginate returns one page of items. Pages past the end are empty; Total
// and TotalPages always describe the full list.
func Paginate(items []Item, page, pageSize int, limits PageLimits) Result {
	page, pageSize = limits.Normalize(page, pageSize)
	total := len(items)

	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	result := Result{
		Items:      []Item{},
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}

	// Compare page numbers before multiplying so huge pages cannot overflow.
	if page > totalPages {
		return result
	}
	start := (page - 1) * pageSize
	end := total
	if pageSize < total-start {
		end = start + pageSize
	}
	result.Items = append(result.Items, items[start:end]...)
	return result
}
