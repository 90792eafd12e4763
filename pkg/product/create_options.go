package product

type CreateOptions struct {
	Title      string
	CategoryId string
}

func (o *CreateOptions) Validate() error {
	if o == nil {
		return ErrCreateOptionsRequired
	}
	if len(o.Title) == 0 {
		return ErrTitleRequired
	}
	if len(o.CategoryId) == 0 {
		return ErrCategoryIdRequired
	}
	return nil
}
