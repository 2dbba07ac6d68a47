package supabase

import (
	"fmt"

	"github.com/supabase-community/postgrest-go"

	"podarunok-backend/internal/store"
)

// DataStore adapts the PostgREST query builder to the capability interface
// in internal/store. All reads select full rows; identifier assignment and
// column defaults stay on the server side.
type DataStore struct {
	client *Client
}

var _ store.Store = (*DataStore)(nil)

func NewDataStore(client *Client) *DataStore {
	return &DataStore{client: client}
}

func (d *DataStore) Select(table string, q store.Query, dest any) error {
	fb := d.client.Supabase.From(table).Select("*", "", false)
	for _, f := range q.Filters {
		fb = fb.Eq(f.Column, f.Value)
	}
	if q.OrderBy != "" {
		fb = fb.Order(q.OrderBy, &postgrest.OrderOpts{Ascending: !q.Descending})
	}
	if q.Limit > 0 {
		fb = fb.Limit(q.Limit, "")
	}

	if _, err := fb.ExecuteTo(dest); err != nil {
		return fmt.Errorf("select from %s: %w", table, err)
	}
	return nil
}

func (d *DataStore) InsertOne(table string, row any, dest any) error {
	fb := d.client.Supabase.From(table).Insert(row, false, "", "representation", "")
	if _, err := fb.Single().ExecuteTo(dest); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}
