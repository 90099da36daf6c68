package account

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// ListByOwner returns all of the owner's accounts sorted by name ascending.
func (r *Reader) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Account, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy(psql.Quote("account_name")).Asc(),
	)

	return bob.All(ctx, r.exec, q, scan.StructMapper[*Account]())
}

// Find returns the owner's account with the given name, or nil when absent.
func (r *Reader) Find(ctx context.Context, ownerID uuid.UUID, name string) (*Account, error) {
	return r.find(ctx, ownerID, name, false)
}

func (r *Reader) find(ctx context.Context, ownerID uuid.UUID, name string, forUpdate bool) (*Account, error) {
	whereMods := []mods.Where[*dialect.SelectQuery]{
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.Where(psql.Quote("account_name").EQ(psql.Arg(name))),
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("accounts"),
		psql.WhereAnd(whereMods...),
		sm.Limit(1),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Account]())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}
