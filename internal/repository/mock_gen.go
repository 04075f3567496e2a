// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./court.go -destination=../mocks/mock_court_repository.go -package=mocks CourtRepositoryIface
//go:generate mockgen -source=./availability.go -destination=../mocks/mock_availability_repository.go -package=mocks AvailabilityRepositoryIface
//go:generate mockgen -source=./booking.go -destination=../mocks/mock_booking_repository.go -package=mocks BookingRepositoryIface
//go:generate mockgen -source=./class.go -destination=../mocks/mock_class_repository.go -package=mocks ClassRepositoryIface
//go:generate mockgen -source=./invoice.go -destination=../mocks/mock_invoice_repository.go -package=mocks InvoiceRepositoryIface
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
