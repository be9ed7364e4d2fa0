package funct

func Map[T any, R any](slide []T, transformer func(x T) (R, error)) ([]R, error) {
	var newSlide []R

	for _, v := range slide {
		newValue, err := transformer(v)
		if err != nil {
			return nil, err
		}

		newSlide = append(
			newSlide,
			newValue,
		)
	}
	return newSlide, nil
}

func Filter[T any](slide []T, cond func(x T) bool) []T {
	var result []T

	for _, v := range slide {
		if cond(v) {
			result = append(result, v)
		}
	}
	return result
}

func Some[T any](slide []T, cond func(x T) bool) bool {
	for _, v := range slide {
		if cond(v) {
			return true
		}
	}
	return false
}
