package common

// ProductIDPro is the single product identifier sold through the payment
// capability. The purchases collection is keyed by product id, so there is
// at most one durable record for it.
const ProductIDPro = "pro_version"

// PurchaseKindOneTime is the acknowledgement kind for non-consumable
// one-time purchases.
const PurchaseKindOneTime = "onetime"
