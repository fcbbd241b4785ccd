// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"tora-app.io/tora/ent/devicetoken"
	"tora-app.io/tora/ent/emergencycontact"
	"tora-app.io/tora/ent/schema"
	"tora-app.io/tora/ent/selfregulationevent"
	"tora-app.io/tora/ent/task"
	"tora-app.io/tora/ent/user"
	"tora-app.io/tora/ent/whatsappsession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	devicetokenMixin := schema.DeviceToken{}.Mixin()
	devicetokenMixinFields0 := devicetokenMixin[0].Fields()
	_ = devicetokenMixinFields0
	devicetokenFields := schema.DeviceToken{}.Fields()
	_ = devicetokenFields
	// devicetokenDescCreatedAt is the schema descriptor for created_at field.
	devicetokenDescCreatedAt := devicetokenMixinFields0[0].Descriptor()
	// devicetoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	devicetoken.DefaultCreatedAt = devicetokenDescCreatedAt.Default.(func() time.Time)
	// devicetokenDescUpdatedAt is the schema descriptor for updated_at field.
	devicetokenDescUpdatedAt := devicetokenMixinFields0[1].Descriptor()
	// devicetoken.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	devicetoken.DefaultUpdatedAt = devicetokenDescUpdatedAt.Default.(func() time.Time)
	// devicetoken.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	devicetoken.UpdateDefaultUpdatedAt = devicetokenDescUpdatedAt.UpdateDefault.(func() time.Time)
	// devicetokenDescToken is the schema descriptor for token field.
	devicetokenDescToken := devicetokenFields[1].Descriptor()
	// devicetoken.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	devicetoken.TokenValidator = devicetokenDescToken.Validators[0].(func(string) error)
	// devicetokenDescUserID is the schema descriptor for user_id field.
	devicetokenDescUserID := devicetokenFields[2].Descriptor()
	// devicetoken.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	devicetoken.UserIDValidator = devicetokenDescUserID.Validators[0].(func(string) error)
	// devicetokenDescActive is the schema descriptor for active field.
	devicetokenDescActive := devicetokenFields[4].Descriptor()
	// devicetoken.DefaultActive holds the default value on creation for the active field.
	devicetoken.DefaultActive = devicetokenDescActive.Default.(bool)
	// devicetokenDescLastUsed is the schema descriptor for last_used field.
	devicetokenDescLastUsed := devicetokenFields[5].Descriptor()
	// devicetoken.DefaultLastUsed holds the default value on creation for the last_used field.
	devicetoken.DefaultLastUsed = devicetokenDescLastUsed.Default.(func() time.Time)
	// devicetokenDescID is the schema descriptor for id field.
	devicetokenDescID := devicetokenFields[0].Descriptor()
	// devicetoken.DefaultID holds the default value on creation for the id field.
	devicetoken.DefaultID = devicetokenDescID.Default.(func() string)
	emergencycontactMixin := schema.EmergencyContact{}.Mixin()
	emergencycontactMixinFields0 := emergencycontactMixin[0].Fields()
	_ = emergencycontactMixinFields0
	emergencycontactFields := schema.EmergencyContact{}.Fields()
	_ = emergencycontactFields
	// emergencycontactDescCreatedAt is the schema descriptor for created_at field.
	emergencycontactDescCreatedAt := emergencycontactMixinFields0[0].Descriptor()
	// emergencycontact.DefaultCreatedAt holds the default value on creation for the created_at field.
	emergencycontact.DefaultCreatedAt = emergencycontactDescCreatedAt.Default.(func() time.Time)
	// emergencycontactDescUpdatedAt is the schema descriptor for updated_at field.
	emergencycontactDescUpdatedAt := emergencycontactMixinFields0[1].Descriptor()
	// emergencycontact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	emergencycontact.DefaultUpdatedAt = emergencycontactDescUpdatedAt.Default.(func() time.Time)
	// emergencycontact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	emergencycontact.UpdateDefaultUpdatedAt = emergencycontactDescUpdatedAt.UpdateDefault.(func() time.Time)
	// emergencycontactDescParentID is the schema descriptor for parent_id field.
	emergencycontactDescParentID := emergencycontactFields[1].Descriptor()
	// emergencycontact.ParentIDValidator is a validator for the "parent_id" field. It is called by the builders before save.
	emergencycontact.ParentIDValidator = emergencycontactDescParentID.Validators[0].(func(string) error)
	// emergencycontactDescName is the schema descriptor for name field.
	emergencycontactDescName := emergencycontactFields[2].Descriptor()
	// emergencycontact.NameValidator is a validator for the "name" field. It is called by the builders before save.
	emergencycontact.NameValidator = func() func(string) error {
		validators := emergencycontactDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// emergencycontactDescPhone is the schema descriptor for phone field.
	emergencycontactDescPhone := emergencycontactFields[3].Descriptor()
	// emergencycontact.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	emergencycontact.PhoneValidator = func() func(string) error {
		validators := emergencycontactDescPhone.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(phone string) error {
			for _, fn := range fns {
				if err := fn(phone); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// emergencycontactDescEmail is the schema descriptor for email field.
	emergencycontactDescEmail := emergencycontactFields[4].Descriptor()
	// emergencycontact.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	emergencycontact.EmailValidator = emergencycontactDescEmail.Validators[0].(func(string) error)
	// emergencycontactDescRelationship is the schema descriptor for relationship field.
	emergencycontactDescRelationship := emergencycontactFields[5].Descriptor()
	// emergencycontact.RelationshipValidator is a validator for the "relationship" field. It is called by the builders before save.
	emergencycontact.RelationshipValidator = emergencycontactDescRelationship.Validators[0].(func(string) error)
	// emergencycontactDescActive is the schema descriptor for active field.
	emergencycontactDescActive := emergencycontactFields[6].Descriptor()
	// emergencycontact.DefaultActive holds the default value on creation for the active field.
	emergencycontact.DefaultActive = emergencycontactDescActive.Default.(bool)
	// emergencycontactDescReceiveAlerts is the schema descriptor for receive_alerts field.
	emergencycontactDescReceiveAlerts := emergencycontactFields[7].Descriptor()
	// emergencycontact.DefaultReceiveAlerts holds the default value on creation for the receive_alerts field.
	emergencycontact.DefaultReceiveAlerts = emergencycontactDescReceiveAlerts.Default.(bool)
	// emergencycontactDescPriority is the schema descriptor for priority field.
	emergencycontactDescPriority := emergencycontactFields[8].Descriptor()
	// emergencycontact.DefaultPriority holds the default value on creation for the priority field.
	emergencycontact.DefaultPriority = emergencycontactDescPriority.Default.(int)
	// emergencycontactDescID is the schema descriptor for id field.
	emergencycontactDescID := emergencycontactFields[0].Descriptor()
	// emergencycontact.DefaultID holds the default value on creation for the id field.
	emergencycontact.DefaultID = emergencycontactDescID.Default.(func() string)
	selfregulationeventMixin := schema.SelfRegulationEvent{}.Mixin()
	selfregulationeventMixinFields0 := selfregulationeventMixin[0].Fields()
	_ = selfregulationeventMixinFields0
	selfregulationeventFields := schema.SelfRegulationEvent{}.Fields()
	_ = selfregulationeventFields
	// selfregulationeventDescCreatedAt is the schema descriptor for created_at field.
	selfregulationeventDescCreatedAt := selfregulationeventMixinFields0[0].Descriptor()
	// selfregulationevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	selfregulationevent.DefaultCreatedAt = selfregulationeventDescCreatedAt.Default.(func() time.Time)
	// selfregulationeventDescChildID is the schema descriptor for child_id field.
	selfregulationeventDescChildID := selfregulationeventFields[1].Descriptor()
	// selfregulationevent.ChildIDValidator is a validator for the "child_id" field. It is called by the builders before save.
	selfregulationevent.ChildIDValidator = selfregulationeventDescChildID.Validators[0].(func(string) error)
	// selfregulationeventDescAssistanceRequested is the schema descriptor for assistance_requested field.
	selfregulationeventDescAssistanceRequested := selfregulationeventFields[6].Descriptor()
	// selfregulationevent.DefaultAssistanceRequested holds the default value on creation for the assistance_requested field.
	selfregulationevent.DefaultAssistanceRequested = selfregulationeventDescAssistanceRequested.Default.(bool)
	// selfregulationeventDescResolved is the schema descriptor for resolved field.
	selfregulationeventDescResolved := selfregulationeventFields[8].Descriptor()
	// selfregulationevent.DefaultResolved holds the default value on creation for the resolved field.
	selfregulationevent.DefaultResolved = selfregulationeventDescResolved.Default.(bool)
	// selfregulationeventDescID is the schema descriptor for id field.
	selfregulationeventDescID := selfregulationeventFields[0].Descriptor()
	// selfregulationevent.DefaultID holds the default value on creation for the id field.
	selfregulationevent.DefaultID = selfregulationeventDescID.Default.(func() string)
	taskMixin := schema.Task{}.Mixin()
	taskMixinFields0 := taskMixin[0].Fields()
	_ = taskMixinFields0
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskMixinFields0[0].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskMixinFields0[1].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taskDescChildID is the schema descriptor for child_id field.
	taskDescChildID := taskFields[1].Descriptor()
	// task.ChildIDValidator is a validator for the "child_id" field. It is called by the builders before save.
	task.ChildIDValidator = taskDescChildID.Validators[0].(func(string) error)
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[2].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = func() func(string) error {
		validators := taskDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = func() func(string) error {
		validators := userDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescActive is the schema descriptor for active field.
	userDescActive := userFields[5].Descriptor()
	// user.DefaultActive holds the default value on creation for the active field.
	user.DefaultActive = userDescActive.Default.(bool)
	whatsappsessionMixin := schema.WhatsAppSession{}.Mixin()
	whatsappsessionMixinFields0 := whatsappsessionMixin[0].Fields()
	_ = whatsappsessionMixinFields0
	whatsappsessionFields := schema.WhatsAppSession{}.Fields()
	_ = whatsappsessionFields
	// whatsappsessionDescCreatedAt is the schema descriptor for created_at field.
	whatsappsessionDescCreatedAt := whatsappsessionMixinFields0[0].Descriptor()
	// whatsappsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	whatsappsession.DefaultCreatedAt = whatsappsessionDescCreatedAt.Default.(func() time.Time)
	// whatsappsessionDescUpdatedAt is the schema descriptor for updated_at field.
	whatsappsessionDescUpdatedAt := whatsappsessionMixinFields0[1].Descriptor()
	// whatsappsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	whatsappsession.DefaultUpdatedAt = whatsappsessionDescUpdatedAt.Default.(func() time.Time)
	// whatsappsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	whatsappsession.UpdateDefaultUpdatedAt = whatsappsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// whatsappsessionDescAuthenticated is the schema descriptor for authenticated field.
	whatsappsessionDescAuthenticated := whatsappsessionFields[2].Descriptor()
	// whatsappsession.DefaultAuthenticated holds the default value on creation for the authenticated field.
	whatsappsession.DefaultAuthenticated = whatsappsessionDescAuthenticated.Default.(bool)
}
