package product

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
	Ids        []string
	CategoryId string
	Query      string
}
