// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import (
	"fmt"
	"strings"

	pgstore "github.com/taibuivan/vidtube/internal/platform/postgres"
)

// feedProjection is the column allowlist of [FeedVideo], in scan order,
// followed by the window total.
const feedProjection = `
	v.id, v.videofile, v.thumbnail, v.title, v.description, v.duration,
	v.views, v.ispublished, v.createdat,
	o.id, o.username, o.fullname, o.avatar,
	COUNT(*) OVER()`

/*
buildFeedQuery renders the filtered, sorted and paginated feed statement.

Description: Filters are appended with sequential placeholders. The sort
column comes from [SortFields] only, so no user input is interpolated.
Ties are broken by id to keep page boundaries deterministic.
*/
func buildFeedQuery(query FeedQuery) (string, []any) {
	var builder strings.Builder
	args := make([]any, 0, 5)
	argID := 1

	builder.WriteString("SELECT")
	builder.WriteString(feedProjection)
	builder.WriteString(`
	FROM core.video v
	JOIN users.account o ON o.id = v.ownerid
	WHERE `)

	// Visibility: published, or the viewer's own drafts
	if query.ViewerID != "" {
		builder.WriteString(fmt.Sprintf(pgstore.VisibleVideo, argID))
		args = append(args, query.ViewerID)
		argID++
	} else {
		builder.WriteString("v.ispublished")
	}

	if query.Query != "" {
		builder.WriteString(fmt.Sprintf(" AND v.title ILIKE $%d", argID))
		args = append(args, "%"+escapeLike(query.Query)+"%")
		argID++
	}

	if query.UserID != "" {
		builder.WriteString(fmt.Sprintf(" AND v.ownerid = $%d", argID))
		args = append(args, query.UserID)
		argID++
	}

	column, ok := SortFields[query.SortBy]
	if !ok {
		column = SortFields[DefaultSortBy]
	}
	direction := "DESC"
	if strings.EqualFold(query.SortType, "asc") {
		direction = "ASC"
	}

	builder.WriteString(fmt.Sprintf(" ORDER BY %s %s, v.id %s", column, direction, direction))
	builder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, query.Page.Limit, query.Page.Offset())

	return builder.String(), args
}

// escapeLike neutralizes LIKE wildcards so the query is a literal substring.
func escapeLike(value string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
}
