package strarray

//Option represents converter option
type Option func(c *Converter)

//Options represents converter options
type Options []Option

//Apply applies options
func (o Options) Apply(c *Converter) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(c)
	}
}

//WithService replaces the leaf conversion service
func WithService(service Service) Option {
	return func(c *Converter) {
		c.service = service
	}
}

//WithParser replaces the sequence parser
func WithParser(parse ParseFunc) Option {
	return func(c *Converter) {
		c.parse = parse
	}
}
