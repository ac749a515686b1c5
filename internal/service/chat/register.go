package chat

import (
	"google.golang.org/grpc"

	"github.com/oggyb/golf-buddy/internal/api"
	"github.com/oggyb/golf-buddy/internal/app"
)

// Registrar ties the Chat service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Chat service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	api.RegisterChatServiceServer(s, NewHandlers(NewChatService(r.appCtx)))
}
