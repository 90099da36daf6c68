package transaction

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

// FindByID returns the owner's transaction, or nil when it does not exist or
// belongs to a different owner.
func (r *Reader) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error) {
	return r.findByID(ctx, ownerID, id, false)
}

func (r *Reader) findByID(ctx context.Context, ownerID, id uuid.UUID, forUpdate bool) (*Transaction, error) {
	whereMods := []mods.Where[*dialect.SelectQuery]{
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("transactions"),
		psql.WhereAnd(whereMods...),
		sm.Limit(1),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// List returns the owner's transactions matching the filter, ordered by
// occurred_at descending. Nil filter returns everything.
func (r *Reader) List(ctx context.Context, ownerID uuid.UUID, filter *TransactionFilter) ([]*Transaction, error) {
	whereMods := []mods.Where[*dialect.SelectQuery]{
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	}

	if filter != nil {
		if filter.Kind != nil {
			whereMods = append(whereMods, sm.Where(psql.Quote("kind").EQ(psql.Arg(*filter.Kind))))
		}
		if filter.Category != nil {
			whereMods = append(whereMods, sm.Where(psql.Quote("category").EQ(psql.Arg(*filter.Category))))
		}
		if filter.Division != nil {
			whereMods = append(whereMods, sm.Where(psql.Quote("division").EQ(psql.Arg(*filter.Division))))
		}
		if filter.From != nil {
			whereMods = append(whereMods, sm.Where(psql.Quote("occurred_at").GTE(psql.Arg(*filter.From))))
		}
		if filter.To != nil {
			whereMods = append(whereMods, sm.Where(psql.Quote("occurred_at").LTE(psql.Arg(*filter.To))))
		}
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("transactions"),
	}
	if len(whereMods) == 1 {
		queryMods = append(queryMods, whereMods[0])
	} else {
		queryMods = append(queryMods, psql.WhereAnd(whereMods...))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("occurred_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)
	if filter != nil && filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}

	return bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}
