package component

// Kind tags the closed set of entity variants.
type Kind uint8

const (
	KindProjectile Kind = iota
	KindInterceptor
	KindLauncher
	KindHome
)

func (k Kind) String() string {
	switch k {
	case KindProjectile:
		return "projectile"
	case KindInterceptor:
		return "interceptor"
	case KindLauncher:
		return "launcher"
	case KindHome:
		return "home"
	default:
		return "unknown"
	}
}

// Drawable is the capability every entity exposes to renderers.
type Drawable interface {
	Kind() Kind
	Pos() Position
}

// Updatable entities advance one tick at a time.
type Updatable interface {
	Drawable
	Update()
}

var (
	_ Drawable  = GroundTarget{}
	_ Updatable = (*Projectile)(nil)
	_ Updatable = (*Interceptor)(nil)
)
