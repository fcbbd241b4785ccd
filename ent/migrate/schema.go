// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DeviceTokensColumns holds the columns for the "device_tokens" table.
	DeviceTokensColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "device_type", Type: field.TypeEnum, Enums: []string{"ANDROID", "IOS", "WEB"}},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "last_used", Type: field.TypeTime},
	}
	// DeviceTokensTable holds the schema information for the "device_tokens" table.
	DeviceTokensTable = &schema.Table{
		Name:       "device_tokens",
		Columns:    DeviceTokensColumns,
		PrimaryKey: []*schema.Column{DeviceTokensColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "devicetoken_user_id_active",
				Unique:  false,
				Columns: []*schema.Column{DeviceTokensColumns[4], DeviceTokensColumns[6]},
			},
			{
				Name:    "devicetoken_last_used",
				Unique:  false,
				Columns: []*schema.Column{DeviceTokensColumns[7]},
			},
		},
	}
	// EmergencyContactsColumns holds the columns for the "emergency_contacts" table.
	EmergencyContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "parent_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "phone", Type: field.TypeString, Size: 64},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "relationship", Type: field.TypeString, Nullable: true, Size: 128},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "receive_alerts", Type: field.TypeBool, Default: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
	}
	// EmergencyContactsTable holds the schema information for the "emergency_contacts" table.
	EmergencyContactsTable = &schema.Table{
		Name:       "emergency_contacts",
		Columns:    EmergencyContactsColumns,
		PrimaryKey: []*schema.Column{EmergencyContactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "emergencycontact_parent_id_active_receive_alerts",
				Unique:  false,
				Columns: []*schema.Column{EmergencyContactsColumns[3], EmergencyContactsColumns[8], EmergencyContactsColumns[9]},
			},
			{
				Name:    "emergencycontact_parent_id_priority",
				Unique:  false,
				Columns: []*schema.Column{EmergencyContactsColumns[3], EmergencyContactsColumns[10]},
			},
		},
	}
	// SelfRegulationEventsColumns holds the columns for the "self_regulation_events" table.
	SelfRegulationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "child_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}},
		{Name: "emotion", Type: field.TypeString, Nullable: true},
		{Name: "trigger", Type: field.TypeString, Nullable: true},
		{Name: "strategy_used", Type: field.TypeString, Nullable: true},
		{Name: "assistance_requested", Type: field.TypeBool, Default: false},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolved_by", Type: field.TypeString, Nullable: true},
		{Name: "resolution_notes", Type: field.TypeString, Nullable: true},
	}
	// SelfRegulationEventsTable holds the schema information for the "self_regulation_events" table.
	SelfRegulationEventsTable = &schema.Table{
		Name:       "self_regulation_events",
		Columns:    SelfRegulationEventsColumns,
		PrimaryKey: []*schema.Column{SelfRegulationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "selfregulationevent_child_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SelfRegulationEventsColumns[2], SelfRegulationEventsColumns[1]},
			},
			{
				Name:    "selfregulationevent_resolved",
				Unique:  false,
				Columns: []*schema.Column{SelfRegulationEventsColumns[9]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "child_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "DONE"}, Default: "PENDING"},
		{Name: "due_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_child_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3], TasksColumns[5]},
			},
			{
				Name:    "task_status_due_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5], TasksColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"PARENT", "CHILD"}},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_parent_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6]},
			},
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// WhatsAppSessionsColumns holds the columns for the "whats_app_sessions" table.
	WhatsAppSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "last_qr_code", Type: field.TypeString, Nullable: true},
		{Name: "authenticated", Type: field.TypeBool, Default: false},
	}
	// WhatsAppSessionsTable holds the schema information for the "whats_app_sessions" table.
	WhatsAppSessionsTable = &schema.Table{
		Name:       "whats_app_sessions",
		Columns:    WhatsAppSessionsColumns,
		PrimaryKey: []*schema.Column{WhatsAppSessionsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DeviceTokensTable,
		EmergencyContactsTable,
		SelfRegulationEventsTable,
		TasksTable,
		UsersTable,
		WhatsAppSessionsTable,
	}
)

func init() {
}
