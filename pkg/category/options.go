package category

type IdOption struct {
	Id string
}

type FindOneOptions struct {
	IdOption *IdOption
}

func (o *FindOneOptions) Validate() error {
	if o == nil || o.IdOption == nil {
		return ErrOneOptionRequired
	}
	if len(o.IdOption.Id) == 0 {
		return ErrIdRequired
	}
	return nil
}

type FindOptions struct {
	Ids []string
}

type CreateOptions struct {
	Name string
}

func (o *CreateOptions) Validate() error {
	if o == nil {
		return ErrCreateOptionsRequired
	}
	if len(o.Name) == 0 {
		return ErrNameRequired
	}
	return nil
}
