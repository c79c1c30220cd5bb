package element

// Decorator enriches an element tree after construction, for example to
// attach labels or layout hints derived from an external source.
type Decorator interface {
	Decorate(*Element) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*Element) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(root *Element) error {
	return fn(root)
}
