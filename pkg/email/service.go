// pkg/email/service.go
package email

var GlobalEmailService *EmailService

func InitEmailService(apiKey, ownerEmail string) error {
	service, err := NewEmailService(apiKey, ownerEmail)
	if err != nil {
		return err
	}
	GlobalEmailService = service
	return nil
}
