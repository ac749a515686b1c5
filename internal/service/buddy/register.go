package buddy

import (
	"google.golang.org/grpc"

	"github.com/oggyb/golf-buddy/internal/api"
	"github.com/oggyb/golf-buddy/internal/app"
)

// Registrar ties the Buddy service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Buddy service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	api.RegisterBuddyServiceServer(s, NewHandlers(NewBuddyService(r.appCtx)))
}
