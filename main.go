// @title           Indicator EMS API
// @version         1.0
// @description     Business reporting and insight API server for EMS manufacturing data
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
package main

import "github.com/DigitalBullGO/indicatorems/cmd"

func main() {
	cmd.Execute()
}
