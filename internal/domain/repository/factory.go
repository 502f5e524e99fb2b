package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Staff() StaffRepository
	Clients() ClientRepository
	Orders() OrderRepository
	Notifications() NotificationRepository
}
