package table

// Pager - границы "Anterior"/"Siguiente". Сам ничего не загружает.
type Pager struct {
	Page  int
	Pages int
}

func (p Pager) HasPrev() bool { return p.Page > 1 }

func (p Pager) HasNext() bool { return p.Page < p.Pages }

// Request возвращает страницу, которую надо передать обработчику смены страницы,
// ограниченную диапазоном [1, Pages].
func (p Pager) Request(page int) int {
	if page > p.Pages {
		page = p.Pages
	}
	if page < 1 {
		page = 1
	}
	return page
}
