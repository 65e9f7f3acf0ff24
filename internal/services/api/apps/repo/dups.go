package repo

import (
	"context"
	"strconv"
	"strings"

	perr "showyourapp/internal/platform/errors"
)

// SearchDuplicates finds listings whose stored URL contains the
// normalized input, or whose title contains the given text.
// Substring matching on the URL is deliberate; it catches protocol and
// subdomain variants at the cost of false positives on short hostnames
func (r *queries) SearchDuplicates(ctx context.Context, normURL, title string, limit int) ([]RowDup, error) {
	var args []any
	arg := func(v any) string { args = append(args, v); return "$" + strconv.Itoa(len(args)) }

	var preds []string
	if normURL != "" {
		preds = append(preds, "a.app_url ilike "+arg("%"+normURL+"%"))
	}
	if title != "" {
		preds = append(preds, "a.title ilike "+arg("%"+title+"%"))
	}

	sql := `
select a.id, a.title, a.slug, a.status, coalesce(a.app_url, ''), a.created_at::text,
	u.id, u.username, coalesce(u.avatar, '')
from apps a
join users u on u.id = a.creator_id
where ` + strings.Join(preds, " or ") + `
order by a.created_at desc, a.id desc
limit ` + arg(limit)

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "duplicate search")
	}
	defer rows.Close()

	var out []RowDup
	for rows.Next() {
		var d RowDup
		if err := rows.Scan(
			&d.ID, &d.Title, &d.Slug, &d.Status, &d.AppURL, &d.CreatedAt,
			&d.CreatorID, &d.CreatorName, &d.CreatorAvatar,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
