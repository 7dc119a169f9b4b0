package repository

import "errors"

var (
	ErrInvalidSchedule  = errors.New("некорректные данные расписания")
	ErrInvalidException = errors.New("некорректный список исключений")
	ErrInvalidService   = errors.New("некорректные данные услуги")
	ErrNotFound         = errors.New("запись не найдена")
)
