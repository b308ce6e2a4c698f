// Package settings adds GraphQL settings to the editor's post type and
// taxonomy records: it renders the extra form fields, captures them on
// submit, merges them into the record being saved and injects the stored
// values into registration arguments.
package settings

import (
	"context"
	"log"

	"cptui.GO/form"
	"cptui.GO/hooks"
)

// Controller subscribes the GraphQL settings to a hooks.Registry. It holds
// no per-request state; captured values travel on the save's hooks.Txn.
type Controller struct {
	logger *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger replaces the standard logger used for warnings.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

func New(opts ...Option) *Controller {
	c := &Controller{logger: log.Default()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Init subscribes to all four extension points for every kind.
func (c *Controller) Init(reg *hooks.Registry) {
	for _, kind := range hooks.Kinds() {
		reg.OnRenderFields(kind, c.Render)
		reg.OnBeforeUpdate(kind, c.beforeUpdate)
		reg.OnPreRegister(kind, c.preRegister)
		reg.OnPreSave(kind, c.preSave)
	}
}

func stageKey(kind hooks.Kind) string {
	return "settings:graphql:" + kind.String()
}

// Inject copies the record's GraphQL settings onto registration args.
// show_in_graphql is always a bool; names are the stored string or nil,
// never "". args is not modified.
func Inject(args hooks.Args, name string, record hooks.Record) hooks.Args {
	out := args.Clone()
	a := FromRecord(record)
	out[KeyShowInGraphQL] = a.ShowInGraphQL
	out[KeySingleName] = nil
	if a.SingleName != nil {
		out[KeySingleName] = *a.SingleName
	}
	out[KeyPluralName] = nil
	if a.PluralName != nil {
		out[KeyPluralName] = *a.PluralName
	}
	return out
}

// Capture reads the settings submitted under kind's form group, defaulting
// to false and empty names, and stages them on txn for Merge.
func (c *Controller) Capture(txn *hooks.Txn, kind hooks.Kind, values form.Values) Attributes {
	g := values.Group(kind.FormGroup())
	a := Attributes{
		ShowInGraphQL: Truthy(g.GetOr(KeyShowInGraphQL, "")),
		SingleName:    Name(g.GetOr(KeySingleName, "")),
		PluralName:    Name(g.GetOr(KeyPluralName, "")),
	}
	if txn != nil {
		txn.Stage(stageKey(kind), a)
	}
	return a
}

// Merge overwrites the settings of records[name] with the values staged on
// txn, creating the record if needed. Nothing staged means nothing was
// submitted: the record gets the defaults and a warning is logged.
func (c *Controller) Merge(txn *hooks.Txn, kind hooks.Kind, records hooks.Records, name string) hooks.Records {
	if records == nil {
		records = hooks.Records{}
	}
	var a Attributes
	if v, ok := txn.Take(stageKey(kind)); ok {
		a, _ = v.(Attributes)
	} else {
		c.logger.Printf("settings: %s %q saved without submitted GraphQL settings (txn %q), using defaults", kind, name, txn.ID())
	}
	records[name] = a.ApplyTo(records[name])
	return records
}

func (c *Controller) beforeUpdate(ctx context.Context, kind hooks.Kind, txn *hooks.Txn, values form.Values) error {
	c.Capture(txn, kind, values)
	return nil
}

func (c *Controller) preSave(ctx context.Context, kind hooks.Kind, txn *hooks.Txn, records hooks.Records, name string) (hooks.Records, error) {
	return c.Merge(txn, kind, records, name), nil
}

func (c *Controller) preRegister(ctx context.Context, kind hooks.Kind, args hooks.Args, name string, record hooks.Record) (hooks.Args, error) {
	return Inject(args, name, record), nil
}
