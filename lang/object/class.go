package object

import "fmt"

// Class is a lumen class: a named set of methods and an optional
// constructor, optionally extending a parent class.
type Class struct {
	Name        string
	Parent      *Class
	Constructor *Function
	Methods     map[string]*Function
}

func (c *Class) String() string { return fmt.Sprintf("<class %s>", c.Name) }
func (c *Class) Type() string   { return "class" }
func (c *Class) Truth() bool    { return true }
func (*Class) callable()        {}

var _ Callable = (*Class)(nil)

// LookupMethod resolves name to a method, searching this class then its
// ancestors. It is used both for normal method dispatch and for operator
// overloading dunder lookup (__add__, __eq__, and so on).
func (c *Class) LookupMethod(name string) (*Function, bool) {
	m, _, ok := c.LookupMethodOwner(name)
	return m, ok
}

// LookupMethodOwner is like LookupMethod but also reports which class in
// the ancestor chain actually defines the method, so a BoundMethod can
// remember where to resume a "super" lookup from.
func (c *Class) LookupMethodOwner(name string) (*Function, *Class, bool) {
	for cls := c; cls != nil; cls = cls.Parent {
		if m, ok := cls.Methods[name]; ok {
			return m, cls, true
		}
	}
	return nil, nil, false
}

// IsSubclassOf reports whether c is other or descends from it.
func (c *Class) IsSubclassOf(other *Class) bool {
	for cls := c; cls != nil; cls = cls.Parent {
		if cls == other {
			return true
		}
	}
	return false
}

// Instance is an instance of a Class: a bag of named fields plus a pointer
// to the class that defines its methods.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

// NewInstance returns a zero-field instance of cls.
func NewInstance(cls *Class) *Instance {
	return &Instance{Class: cls, Fields: make(map[string]Value)}
}

// String returns the default instance representation. A class defining
// __str__ gets a dunder-aware representation instead, but that requires
// invoking user code, so it is handled by eval.Stringify rather than here.
func (i *Instance) String() string {
	return fmt.Sprintf("<%s instance>", i.Class.Name)
}
func (i *Instance) Type() string { return i.Class.Name }
func (i *Instance) Truth() bool  { return true }

func (i *Instance) Attr(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m, owner, ok := i.Class.LookupMethodOwner(name); ok {
		return &BoundMethod{Receiver: i, Method: m, Owner: owner}, true
	}
	return nil, false
}

func (i *Instance) SetField(name string, v Value) error {
	i.Fields[name] = v
	return nil
}

var (
	_ Value       = (*Instance)(nil)
	_ HasAttrs    = (*Instance)(nil)
	_ HasSetField = (*Instance)(nil)
)

