package docs

import "github.com/swaggo/swag"

// @title           Taskhub API
// @version         1.0
// @description     API for role-based task management: projects, action checklists, approvals and coin rewards
// @termsOfService  http://swagger.io/terms/

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token

// @tag.name Users
// @tag.description Authentication, profiles and roles

// @tag.name Projects
// @tag.description Project management operations

// @tag.name Tasks
// @tag.description Task lifecycle and action checklist operations

// @tag.name Templates
// @tag.description Action template operations

// @tag.name Settings
// @tag.description Reward policy revisions

// @tag.name Notifications
// @tag.description User notification operations

// Register swagger info
func SwaggerInfo() *swag.Spec {
	return swag.Instance
}
