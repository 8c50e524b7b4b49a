package services

func (errs ValidationErrors) Keys() []string {
	keys := make([]string, 0, len(errs))
	for _, fieldError := range errs {
		keys = append(keys, fieldError.Key)
	}
	return keys
}

func (errs ValidationErrors) Has(key string) bool {
	for _, fieldError := range errs {
		if fieldError.Key == key {
			return true
		}
	}
	return false
}
