package entity

// EmailSetting configuración de correo por tienda y tipo (ej. PRDS_OAGIS_CONFIRM).
// Sin BodyScreenLocation no hay plantilla y la notificación se omite.
type EmailSetting struct {
	ProductStoreID     string
	EmailType          string
	BodyScreenLocation string
	Subject            string
	FromAddress        string
	CcAddress          string
	BccAddress         string
	ContentType        string
}

// HasTemplate indica si la configuración tiene plantilla de cuerpo.
func (s *EmailSetting) HasTemplate() bool {
	return s != nil && s.BodyScreenLocation != ""
}
