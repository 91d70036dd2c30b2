package mask

// Corpus is the default set of paragraphs the text generator cuts lines
// from. The first three are about coalescent processes and total variation
// inpainting, the last one about mathematicians.
var Corpus = []string{
	"A coalescent process is a many particle system which evolves in time by merging particles into clusters. " +
		"They have found a variety of applications in genetics where the coalescent models ancestral relationships as time runs backwards. " +
		"The work on coalescents with pairs of particles merging dates back to the seminal paper of Kingman [Kin82]. " +
		"In [Pit99] and [Sag99], this is extended to the case where multiple merges are allowed to happen. We defer the precise defiition to Section 3. " +
		"In this paper we shall examine the Kingman's coalescent and Beta(2-a, a)-coalescents with 1 < a < 2. " +
		"These have the property that they come down from infinity, that is, when starting with infinitely many particles, " +
		"the process has finitely many particles for any time t > 0. Our goal is to gain precise information. ",
	"about the behaviour near time zero by constructing a scaling limit in some suitable sense. " +
		"Our limiting object will be a coalescent process with infinite mass. " +
		"This requires us to change the usual definition of a coalescent process. Formally, we will be working " +
		"In this article we discuss the implementation of the combined 1st and 2nd order total variation inpainting " +
		"that was introduced in [13]. We describe the algorithm (split Bregman) in detail and we give some examples " +
		"that indicate the difference between pure first and pure second order total variation inpainting. " +
		"Finally we provide a source code for the algorithm written in C and an online demonstration for the IPOL website. ",
	"Image inpainting methods can be roughly separated in four categories, depending on being variational or non-variational " +
		"and local or non-local. The variational methods in contrast with the non-variational are characterised by the fact that " +
		"the reconstructed image ur is obtained as a mimimiser of a certain energy functional. A method is local if the information " +
		"that is needed to fill in the inpainting domain is only taken by the neighboring points of the boundary of D. " +
		"Non-local or global inpainting methods take into account all the information from the known part of the image, " +
		"usually weighted by its distance to the point that is to be filled in. The latter class of methods is very powerful, " +
		"allowing to fill in structures and textures almost equally well. However, they still have some disadvantages. ",
	"Mathematicians, those adorable and nerdy creatures... Not many people know what they actually do... " +
		"or even if what they do is useful, but almost everybody has a mental picture of what they look like. " +
		"Some people imagine bearded men walking aimlessly in circles while muttering words to themselves; " +
		"others picture men with thick glasses making sums and multiplications all day long with a powerful " +
		"mental skill; the most generous ones think of 'beautiful minds'. No, I do not do a PhD because I " +
		"want to become a high school teacher, but because I want to do research. No, not everything has " +
		"been discovered in Mathematics. Actually there is still a lot to be discoreved. And yes,... I wear thick glasses. ",
}
