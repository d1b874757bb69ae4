// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sitewerk/sitewerk/ent/predicate"
	"github.com/sitewerk/sitewerk/ent/prospect"
	"github.com/sitewerk/sitewerk/ent/website"
)

// ProspectQuery is the builder for querying Prospect entities.
type ProspectQuery struct {
	config
	ctx          *QueryContext
	order        []prospect.OrderOption
	inters       []Interceptor
	predicates   []predicate.Prospect
	withWebsites *WebsiteQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ProspectQuery builder.
func (_q *ProspectQuery) Where(ps ...predicate.Prospect) *ProspectQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ProspectQuery) Limit(limit int) *ProspectQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ProspectQuery) Offset(offset int) *ProspectQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ProspectQuery) Unique(unique bool) *ProspectQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ProspectQuery) Order(o ...prospect.OrderOption) *ProspectQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryWebsites chains the current query on the "websites" edge.
func (_q *ProspectQuery) QueryWebsites() *WebsiteQuery {
	query := (&WebsiteClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(prospect.Table, prospect.FieldID, selector),
			sqlgraph.To(website.Table, website.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, prospect.WebsitesTable, prospect.WebsitesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Prospect entity from the query.
// Returns a *NotFoundError when no Prospect was found.
func (_q *ProspectQuery) First(ctx context.Context) (*Prospect, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{prospect.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ProspectQuery) FirstX(ctx context.Context) *Prospect {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Prospect ID from the query.
// Returns a *NotFoundError when no Prospect ID was found.
func (_q *ProspectQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{prospect.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ProspectQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Prospect entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Prospect entity is found.
// Returns a *NotFoundError when no Prospect entities are found.
func (_q *ProspectQuery) Only(ctx context.Context) (*Prospect, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{prospect.Label}
	default:
		return nil, &NotSingularError{prospect.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ProspectQuery) OnlyX(ctx context.Context) *Prospect {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Prospect ID in the query.
// Returns a *NotSingularError when more than one Prospect ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ProspectQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{prospect.Label}
	default:
		err = &NotSingularError{prospect.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ProspectQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Prospects.
func (_q *ProspectQuery) All(ctx context.Context) ([]*Prospect, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Prospect, *ProspectQuery]()
	return withInterceptors[[]*Prospect](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ProspectQuery) AllX(ctx context.Context) []*Prospect {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Prospect IDs.
func (_q *ProspectQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(prospect.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ProspectQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ProspectQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ProspectQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ProspectQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ProspectQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ProspectQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ProspectQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ProspectQuery) Clone() *ProspectQuery {
	if _q == nil {
		return nil
	}
	return &ProspectQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]prospect.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.Prospect{}, _q.predicates...),
		withWebsites: _q.withWebsites.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithWebsites tells the query-builder to eager-load the nodes that are connected to
// the "websites" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ProspectQuery) WithWebsites(opts ...func(*WebsiteQuery)) *ProspectQuery {
	query := (&WebsiteClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWebsites = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Prospect.Query().
//		GroupBy(prospect.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ProspectQuery) GroupBy(field string, fields ...string) *ProspectGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ProspectGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = prospect.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Prospect.Query().
//		Select(prospect.FieldName).
//		Scan(ctx, &v)
func (_q *ProspectQuery) Select(fields ...string) *ProspectSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ProspectSelect{ProspectQuery: _q}
	sbuild.label = prospect.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ProspectSelect configured with the given aggregations.
func (_q *ProspectQuery) Aggregate(fns ...AggregateFunc) *ProspectSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ProspectQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !prospect.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ProspectQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Prospect, error) {
	var (
		nodes       = []*Prospect{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withWebsites != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Prospect).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Prospect{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withWebsites; query != nil {
		if err := _q.loadWebsites(ctx, query, nodes,
			func(n *Prospect) { n.Edges.Websites = []*Website{} },
			func(n *Prospect, e *Website) { n.Edges.Websites = append(n.Edges.Websites, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ProspectQuery) loadWebsites(ctx context.Context, query *WebsiteQuery, nodes []*Prospect, init func(*Prospect), assign func(*Prospect, *Website)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Prospect)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.Website(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(prospect.WebsitesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.prospect_websites
		if fk == nil {
			return fmt.Errorf(`foreign-key "prospect_websites" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "prospect_websites" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ProspectQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ProspectQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(prospect.Table, prospect.Columns, sqlgraph.NewFieldSpec(prospect.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prospect.FieldID)
		for i := range fields {
			if fields[i] != prospect.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ProspectQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(prospect.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = prospect.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ProspectGroupBy is the group-by builder for Prospect entities.
type ProspectGroupBy struct {
	selector
	build *ProspectQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ProspectGroupBy) Aggregate(fns ...AggregateFunc) *ProspectGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ProspectGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProspectQuery, *ProspectGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ProspectGroupBy) sqlScan(ctx context.Context, root *ProspectQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ProspectSelect is the builder for selecting fields of Prospect entities.
type ProspectSelect struct {
	*ProspectQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ProspectSelect) Aggregate(fns ...AggregateFunc) *ProspectSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ProspectSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProspectQuery, *ProspectSelect](ctx, _s.ProspectQuery, _s, _s.inters, v)
}

func (_s *ProspectSelect) sqlScan(ctx context.Context, root *ProspectQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
