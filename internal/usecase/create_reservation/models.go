package create_reservation

// Request модель запроса на создание бронирования
type Request struct {
	Nombre   string
	Apellido string
	Whatsapp string
	Deporte  *string // Вид спорта (опционально)
	Cancha   string
	Fecha    string // Дата, формат не проверяется
	Horario  string
	Precio   *int // Если не передана, берётся текущая цена поля
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID int64
}
